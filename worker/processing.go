package worker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"clinscribe.com/cna/pipeline"
	"clinscribe.com/cna/tasks"
	"clinscribe.com/cna/utils"
)

type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

type Task struct {
	delivery  *amqp.Delivery
	noteTask  *tasks.NoteTask
	message   *Message
	redisKey  string
	cnaLogger *zerolog.Logger
}

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	task, err := worker.createTask(delivery)
	rejectLogger := worker.cnaLogger.With().Str("message_id", delivery.MessageId).Logger()
	if err != nil {
		worker.cnaLogger.Err(err).
			Str("message_id", delivery.MessageId).
			Str("tid", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.processTask(task); err != nil {
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.pingSequencer(task, *task.message); err != nil {
		task.cnaLogger.Err(err).Msg("Got error while sending message to sequencer queue")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.cnaLogger.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.cnaLogger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message, got error %w", err)
	}
	noteTask, err := worker.redis.getNoteTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query note task for message, got error %w", err)
	}
	taskLogger := worker.cnaLogger.With().Str("tid", message.RedisKey).Logger()
	task := Task{
		delivery:  delivery,
		noteTask:  noteTask,
		redisKey:  message.RedisKey,
		message:   &message,
		cnaLogger: &taskLogger,
	}
	return &task, nil
}

func (worker *Worker) processTask(task *Task) error {
	shouldPerform, err := worker.shouldPerformTask(task)
	if err != nil {
		task.cnaLogger.Err(err).
			Msg("Got error while trying to decide whether to run task")
		return err
	}
	if !shouldPerform {
		return nil
	}
	if err = worker.redis.onTaskStarted(task); err != nil {
		task.cnaLogger.Err(err).Msg("Failed to update task info")
		return fmt.Errorf("failed to update TaskInfo: %w", err)
	}
	if err = worker.runPipeline(task); err != nil {
		task.cnaLogger.Err(err).Msg("Got error while running pipeline")
		if err = worker.redis.onTaskFailedWithError(task, err); err != nil {
			return err
		}
		return nil
	}
	task.cnaLogger.Info().Msg("Saved results, marking task as complete")
	if err = worker.redis.onTaskComplete(task); err != nil {
		task.cnaLogger.Err(err).Msg("Got error while trying to mark task as complete")
		return err
	}
	return nil
}

func (worker *Worker) runPipeline(task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.cnaLogger.Info().Msgf("Processing message from RMQ, attempt # %d", task.noteTask.Analysis.Attempts)
	data, err := worker.s3.getNoteText(task)
	if err != nil {
		task.cnaLogger.Err(err).Caller().Msg("Could not fetch text data from s3")
		return fmt.Errorf("failed fetch data from s3: %w", err)
	}
	request := pipeline.Request{
		Tid:          task.redisKey,
		Text:         string(data),
		PatientID:    task.noteTask.PatientID,
		DocumentType: task.noteTask.DocumentType,
	}
	result, ok := <-worker.ppln(request)
	if !ok {
		task.cnaLogger.Error().Msg("Pipeline channel was closed before returning anything")
		return errors.New("pipeline channel was closed before returning anything")
	}
	if result.Err != nil {
		return result.Err
	}
	task.cnaLogger.Info().Msg("Finished pipeline, saving results to s3")
	encoded, err := json.Marshal(result.Analysis)
	if err != nil {
		task.cnaLogger.Err(err).Msg("Got error while encoding analysis results")
		return err
	}
	if err = worker.s3.saveResultsFile(task, string(encoded)); err != nil {
		task.cnaLogger.Err(err).Msg("Got error while trying to save results")
		return err
	}
	return nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.noteTask.Analysis
	taskLogger := task.cnaLogger

	if taskInfo.Status.Complete() {
		taskLogger.Info().Msg("Task is already done. (might indicate issue acking message with RMQ). Sending back to Sequencer.")
		return false, nil
	}
	if task.noteTask.UserCanceled {
		taskLogger.Info().Msg("Job was canceled, no need to perform this task. Sending back to Sequencer.")
		err := worker.redis.onTaskCancelled(task)
		return false, err
	}
	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Msg("Analysis task has exceeded retries. Sending back to Sequencer.")
		err := worker.redis.onTaskExceededRetries(task, worker.config.TaskMaxRetries)
		return false, err
	}
	return true, nil
}
