package tasks

import (
	"clinscribe.com/cna/redis"
)

type Client struct {
	Notes NoteTasks
}

// NewClient is the preferred way of working with note task state.
func NewClient() (Client, error) {
	notesRedisClient, err := redis.NewClient(NotesDB)
	if err != nil {
		return Client{}, err
	}
	return Client{
		Notes: NoteTasks{client: notesRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Notes.client.Close()
}
