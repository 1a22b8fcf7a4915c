package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=services

// WithdrawalWriter records withdraw instructions.
type WithdrawalWriter interface {
	Save(ctx context.Context, instruction models.WithdrawInstruction) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WithdrawalDispatcher is the Withdrawer used in production: it records the
// instruction and hands it to the chain gateway over Kafka.
type WithdrawalDispatcher struct {
	writer      WithdrawalWriter
	kafkaWriter KafkaWriter
}

// NewWithdrawalDispatcher creates a new WithdrawalDispatcher. kafkaWriter may be nil.
func NewWithdrawalDispatcher(writer WithdrawalWriter, kafkaWriter KafkaWriter) *WithdrawalDispatcher {
	return &WithdrawalDispatcher{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Withdraw saves the instruction, then publishes it.
func (d *WithdrawalDispatcher) Withdraw(ctx context.Context, instruction models.WithdrawInstruction) error {
	if err := d.writer.Save(ctx, instruction); err != nil {
		logger.Log.Errorw("failed to save withdraw instruction", "withdrawal_id", instruction.WithdrawalID, "error", err)
		return err
	}

	d.publish(ctx, instruction)
	return nil
}

// publish sends the instruction to Kafka. Failures are logged only: the
// instruction is already recorded and the gateway can replay from the table.
func (d *WithdrawalDispatcher) publish(ctx context.Context, instruction models.WithdrawInstruction) {
	if d.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "withdrawal_id", instruction.WithdrawalID)
		return
	}

	data, err := json.Marshal(instruction)
	if err != nil {
		logger.Log.Errorw("Failed to marshal withdraw instruction for Kafka", "withdrawal_id", instruction.WithdrawalID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(instruction.WithdrawalID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "operation", Value: []byte(instruction.Operation)},
		},
	}

	if err := d.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish withdraw instruction to Kafka", "withdrawal_id", instruction.WithdrawalID, "error", err)
	} else {
		logger.Log.Infow("Withdraw instruction published to Kafka", "withdrawal_id", instruction.WithdrawalID, "amount", instruction.Amount)
	}
}
