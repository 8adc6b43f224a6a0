package tasks

import (
	"clinscribe.com/cna/redis"
)

const NotesDB redis.DB = 0

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// NoteTask is the redis state document for one note-analysis job.
type NoteTask struct {
	NoteID       string       `json:"note_id"`
	PatientID    string       `json:"patient_id"`
	DocumentType string       `json:"document_type"`
	TextFileKey  string       `json:"text_file_key"`
	UserCanceled bool         `json:"user_canceled"`
	Analysis     NoteTaskInfo `json:"analysis"`
}

type NoteTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	ErrorMessages  []string   `json:"error_messages"`
}

type NoteTasks struct {
	client redis.Client
}

func (tasks NoteTasks) Get(redisKey string) (*NoteTask, error) {
	var task NoteTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies updateFunc to the stored task under a redis lock so
// concurrent workers cannot clobber each other's status transitions.
func (tasks NoteTasks) Update(redisKey string, updateFunc func(task *NoteTask)) (err error) {
	releaseLock, err := tasks.client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		releaseErr := releaseLock()
		if err == nil {
			err = releaseErr
		}
	}()

	var task NoteTask
	if err = tasks.client.GetDocument(redisKey, &task); err != nil {
		return err
	}
	updateFunc(&task)
	return tasks.client.SaveDocument(redisKey, &task)
}
