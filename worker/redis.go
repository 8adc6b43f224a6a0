package worker

import (
	"fmt"

	"clinscribe.com/cna/tasks"
)

type redisTransactions interface {
	getNoteTask(redisKey string) (*tasks.NoteTask, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	err := wrapper.tasksClient.Notes.Update(task.redisKey, func(noteTask *tasks.NoteTask) {
		noteTask.Analysis.Status = tasks.TaskStatusStarted
		noteTask.Analysis.Attempts += 1
		noteTask.Analysis.StartedAt = getFormattedNow()
		noteTask.Analysis.CompletedAt = nil
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	err := wrapper.tasksClient.Notes.Update(task.redisKey, func(noteTask *tasks.NoteTask) {
		noteTask.Analysis.Status = tasks.TaskStatusCanceled
		noteTask.Analysis.StartedAt = getFormattedNow()
		noteTask.Analysis.CompletedAt = getFormattedNow()
		noteTask.Analysis.Attempts += 1
		noteTask.Analysis.ErrorMessages = append(
			noteTask.Analysis.ErrorMessages,
			errorMessages...,
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	return wrapper.tasksClient.Notes.Update(task.redisKey, func(noteTask *tasks.NoteTask) {
		noteTask.Analysis.Status = tasks.TaskStatusCompletedFailure
		noteTask.Analysis.StartedAt = getFormattedNow()
		noteTask.Analysis.CompletedAt = getFormattedNow()
		noteTask.Analysis.Attempts += 1
		noteTask.Analysis.ErrorMessages = append(
			noteTask.Analysis.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				noteTask.Analysis.Attempts,
				maxRetries,
			),
		)
	})
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Notes.Update(task.redisKey, func(noteTask *tasks.NoteTask) {
		noteTask.Analysis.Status = tasks.TaskStatusFailed
		noteTask.Analysis.CompletedAt = getFormattedNow()
		noteTask.Analysis.ErrorMessages = append(noteTask.Analysis.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Notes.Update(task.redisKey, func(noteTask *tasks.NoteTask) {
		if !noteTask.Analysis.Status.Complete() {
			noteTask.Analysis.Status = tasks.TaskStatusCompletedSuccess
		}
		noteTask.Analysis.CompletedAt = getFormattedNow()
		noteTask.Analysis.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getNoteTask(redisKey string) (*tasks.NoteTask, error) {
	return wrapper.tasksClient.Notes.Get(redisKey)
}
