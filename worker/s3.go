package worker

import (
	"clinscribe.com/cna/s3client"
)

type s3Transactions interface {
	saveResultsFile(task *Task, result string) error
	getNoteText(task *Task) ([]byte, error)
	close()
}

type s3ClientWrapper struct {
	s3Client *s3client.Client
}

func (wrapper *s3ClientWrapper) close() {
	wrapper.s3Client.Close()
}

func (wrapper *s3ClientWrapper) saveResultsFile(task *Task, result string) error {
	return wrapper.s3Client.Upload(result, getResultsFileKey(task))
}

func (wrapper *s3ClientWrapper) getNoteText(task *Task) ([]byte, error) {
	return wrapper.s3Client.Download(task.noteTask.TextFileKey)
}
