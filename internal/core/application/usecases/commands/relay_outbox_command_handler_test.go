package commands_test

import (
	"errors"
	"testing"

	"aims/internal/core/application/usecases/commands"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessages() []ports.OutboxMessage {
	return []ports.OutboxMessage{
		{ID: kernel.NewUUID(), AggregateID: kernel.NewUUID(), EventType: "order.placed", Payload: []byte(`{}`), OccurredAt: fixedNow},
		{ID: kernel.NewUUID(), AggregateID: kernel.NewUUID(), EventType: "order.cancelled", Payload: []byte(`{}`), OccurredAt: fixedNow},
	}
}

func TestRelayOutboxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	messages := outboxMessages()
	cmd, err := commands.NewRelayOutboxCommand(50)
	require.NoError(t, err)

	outbox := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("GetUnpublished", ctx, 50).Return(messages, nil).Once(),
		publisher.On("Publish", ctx, messages).Return(nil).Once(),
		outbox.On("MarkPublished", ctx, fixedNow, []kernel.UUID{messages[0].ID, messages[1].ID}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	published, err := commands.NewRelayOutboxCommandHandler(factory, publisher, clock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)

	outbox := new(MockOutboxRepository)
	outbox.On("GetUnpublished", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockEventPublisher)

	published, err := commands.NewRelayOutboxCommandHandler(factory, publisher, clock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_PublishError(t *testing.T) {
	ctx := t.Context()
	messages := outboxMessages()
	cmd, _ := commands.NewRelayOutboxCommand(10)

	outbox := new(MockOutboxRepository)
	outbox.On("GetUnpublished", ctx, 10).Return(messages, nil).Once()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, messages).Return(errors.New("broker down")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	published, err := commands.NewRelayOutboxCommandHandler(factory, publisher, clock).Handle(ctx, cmd)

	require.EqualError(t, err, "broker down")
	assert.Zero(t, published)
	outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
