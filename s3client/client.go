package s3client

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/kelseyhightower/envconfig"

	"clinscribe.com/cna/logger"
)

type Config struct {
	BucketName      string `envconfig:"CNA_COMN_STORAGE_CONTAINER_NAME" required:"true"`
	Region          string `envconfig:"CNA_COMN_AWS_REGION_NAME" default:"us-east-1"`
	AccessKeyID     string `envconfig:"CNA_COMN_AWS_ACCESS_ID"`
	SecretAccessKey string `envconfig:"CNA_COMN_AWS_ACCESS_KEY"`
}

type Client struct {
	config     Config
	session    *session.Session
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
}

var clientLogger = logger.NewLogger("S3 client")

func New() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		clientLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}

	awsConfig := aws.Config{Region: &config.Region}
	// Static credentials when provided; otherwise the SDK default chain
	// (instance profile, env vars) applies.
	if config.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AccessKeyID,
			config.SecretAccessKey,
			"",
		)
	}

	sess, err := session.NewSession(&awsConfig)
	if err != nil {
		clientLogger.Err(err).Msg("Failed to create AWS session")
		return nil, err
	}

	return &Client{
		config:     config,
		session:    sess,
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
	}, nil
}

func (client *Client) Upload(data string, key string) error {
	_, err := client.uploader.Upload(&s3manager.UploadInput{
		Bucket: &client.config.BucketName,
		Key:    &key,
		Body:   strings.NewReader(data),
	})
	return err
}

func (client *Client) Download(key string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := client.downloader.Download(buf, &s3.GetObjectInput{
		Bucket: &client.config.BucketName,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (client *Client) Close() {}
