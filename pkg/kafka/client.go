// Package kafka carries report-archive tasks between the analysis pipeline
// and the background processor.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"culturebridge/internal/config"
	"culturebridge/pkg/database"
	"culturebridge/pkg/log"
	"culturebridge/pkg/tasks"

	"github.com/segmentio/kafka-go"
)

// TaskProcessor handles one archive task. The interface decouples the
// consumer loop from the concrete processor.
type TaskProcessor interface {
	Process(ctx context.Context, task tasks.ReportArchiveTask) error
}

var producer *kafka.Writer

// InitProducer initializes the kafka producer.
func InitProducer(cfg config.KafkaConfig) {
	producer = &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Info("kafka producer initialized")
}

// ProduceReportTask publishes one report-archive task. Without an
// initialized producer the task is silently dropped; archival is best
// effort.
func ProduceReportTask(task tasks.ReportArchiveTask) error {
	if producer == nil {
		return nil
	}

	taskBytes, err := json.Marshal(task)
	if err != nil {
		return err
	}

	return producer.WriteMessages(context.Background(),
		kafka.Message{
			Value: taskBytes,
		},
	)
}

// StartConsumer runs the archive consumer loop. A task that fails three
// times (counted in redis) has its offset committed so it stops blocking
// the partition.
func StartConsumer(cfg config.KafkaConfig, processor TaskProcessor) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{cfg.Brokers},
		Topic:    cfg.Topic,
		GroupID:  "culturebridge-report-consumer",
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})

	log.Infof("kafka consumer started, listening on topic '%s'", cfg.Topic)

	for {
		m, err := r.FetchMessage(context.Background())
		if err != nil {
			log.Error("failed to read message from kafka", err)
			break
		}

		var task tasks.ReportArchiveTask
		if err := json.Unmarshal(m.Value, &task); err != nil {
			log.Errorf("unparseable kafka message: %v, value: %s", err, string(m.Value))
			// Malformed message: commit so it does not block the queue.
			if err := r.CommitMessages(context.Background(), m); err != nil {
				log.Errorf("failed to commit malformed message: %v", err)
			}
			continue
		}

		log.Infof("processing report archive task: reportId=%s", task.ReportID)
		if err := processor.Process(context.Background(), task); err != nil {
			log.Errorf("report archive task failed: reportId=%s, error: %v", task.ReportID, err)
			attemptsKey := fmt.Sprintf("kafka:attempts:%s", task.ReportID)
			attempts, incErr := database.RDB.Incr(context.Background(), attemptsKey).Result()
			if incErr == nil {
				_ = database.RDB.Expire(context.Background(), attemptsKey, 24*time.Hour).Err()
			}
			if incErr != nil {
				// Redis unavailable: leave the offset alone and let kafka retry.
				continue
			}
			if attempts >= 3 {
				log.Errorf("report archive task failed >=3 times, committing offset: reportId=%s", task.ReportID)
				if err := r.CommitMessages(context.Background(), m); err != nil {
					log.Errorf("failed to commit kafka offset: %v", err)
				}
			}
		} else {
			log.Infof("report archive task succeeded: reportId=%s", task.ReportID)
			_ = database.RDB.Del(context.Background(), fmt.Sprintf("kafka:attempts:%s", task.ReportID)).Err()
			if err := r.CommitMessages(context.Background(), m); err != nil {
				log.Errorf("failed to commit kafka offset: %v", err)
			}
		}
	}

	if err := r.Close(); err != nil {
		log.Fatalf("failed to close kafka consumer: %v", err)
	}
}
