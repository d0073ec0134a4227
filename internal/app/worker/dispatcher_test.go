package worker_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LavaJover/shvark-fulfillment-service/internal/app/worker"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-fulfillment-service/internal/mocks"
)

type recordingQueue struct {
	mu      sync.Mutex
	retried []domain.TaskEnvelope
	delays  []time.Duration
	dead    []domain.TaskEnvelope
}

func (q *recordingQueue) Retry(_ context.Context, _ []byte, env domain.TaskEnvelope, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.retried = append(q.retried, env)
	q.delays = append(q.delays, delay)
	return nil
}

func (q *recordingQueue) DeadLetter(_ context.Context, _ []byte, env domain.TaskEnvelope) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dead = append(q.dead, env)
	return nil
}

type fixture struct {
	cards      *mocks.MockCardUsecase
	loans      *mocks.MockLoanUsecase
	completion *mocks.MockCompletionUsecase
	settlement *mocks.MockSettlementUsecase
	queue      *recordingQueue
	d          *worker.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		cards:      mocks.NewMockCardUsecase(ctrl),
		loans:      mocks.NewMockLoanUsecase(ctrl),
		completion: mocks.NewMockCompletionUsecase(ctrl),
		settlement: mocks.NewMockSettlementUsecase(ctrl),
		queue:      &recordingQueue{},
	}
	f.d = worker.NewDispatcher(f.cards, f.loans, f.completion, f.settlement, f.queue, 3, 0, nil)
	return f
}

func envelope(t *testing.T, task string, payload any, attempt int) domain.TaskEnvelope {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return domain.TaskEnvelope{Task: task, Payload: raw, Attempt: attempt}
}

func TestHandle_Dispatch(t *testing.T) {
	tx := domain.TransactionTask{TransactionID: "tx-1"}
	lr := domain.LoanRequestTask{LoanRequestID: "lr-1"}

	tests := []struct {
		name   string
		env    func(t *testing.T) domain.TaskEnvelope
		expect func(f *fixture)
	}{
		{
			name:   "card initiate",
			env:    func(t *testing.T) domain.TaskEnvelope { return envelope(t, domain.TaskCardInitiate, tx, 0) },
			expect: func(f *fixture) { f.cards.EXPECT().Initiate(gomock.Any(), "tx-1").Return(&domain.CardRequest{}, nil) },
		},
		{
			name: "card poll settled",
			env:  func(t *testing.T) domain.TaskEnvelope { return envelope(t, domain.TaskCardPoll, tx, 0) },
			expect: func(f *fixture) {
				f.cards.EXPECT().PollStatus(gomock.Any(), "tx-1").Return(domain.TransactionStatusCompleted, nil)
			},
		},
		{
			name:   "finalize",
			env:    func(t *testing.T) domain.TaskEnvelope { return envelope(t, domain.TaskFinalizeTransaction, tx, 0) },
			expect: func(f *fixture) { f.completion.EXPECT().Finalize(gomock.Any(), "tx-1").Return(true, nil) },
		},
		{
			name:   "unhold",
			env:    func(t *testing.T) domain.TaskEnvelope { return envelope(t, domain.TaskSettlementUnhold, tx, 0) },
			expect: func(f *fixture) { f.settlement.EXPECT().Unhold(gomock.Any(), "tx-1").Return(nil) },
		},
		{
			name:   "loan apply",
			env:    func(t *testing.T) domain.TaskEnvelope { return envelope(t, domain.TaskLoanApply, lr, 0) },
			expect: func(f *fixture) { f.loans.EXPECT().Apply(gomock.Any(), "lr-1").Return(&domain.LoanRequest{}, nil) },
		},
		{
			name: "loan poll issued",
			env:  func(t *testing.T) domain.TaskEnvelope { return envelope(t, domain.TaskLoanPoll, lr, 0) },
			expect: func(f *fixture) {
				f.loans.EXPECT().PollOffers(gomock.Any(), "lr-1").
					Return(&domain.LoanRequest{Status: domain.LoanRequestStatusIssued}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.expect(f)

			f.d.Handle(context.Background(), []byte("k"), tt.env(t))

			assert.Empty(t, f.queue.retried)
			assert.Empty(t, f.queue.dead)
		})
	}
}

func TestHandle_PendingPollIsRequeued(t *testing.T) {
	f := newFixture(t)
	f.cards.EXPECT().PollStatus(gomock.Any(), "tx-1").Return(domain.TransactionStatusActionRequired, nil).Times(2)

	first := envelope(t, domain.TaskCardPoll, domain.TransactionTask{TransactionID: "tx-1"}, 1)
	f.d.Handle(context.Background(), []byte("tx-1"), first)
	require.Len(t, f.queue.retried, 1)

	// last allowed attempt: the poll is dropped, not dead-lettered
	last := envelope(t, domain.TaskCardPoll, domain.TransactionTask{TransactionID: "tx-1"}, 3)
	f.d.Handle(context.Background(), []byte("tx-1"), last)
	assert.Len(t, f.queue.retried, 1)
	assert.Empty(t, f.queue.dead)
}

func TestHandle_TransientFailureRetriesThenDeadLetters(t *testing.T) {
	f := newFixture(t)
	gatewayDown := domain.NewError(domain.ErrGateway, "loan gateway unavailable")
	f.loans.EXPECT().Apply(gomock.Any(), "lr-1").Return(nil, gatewayDown).Times(2)

	f.d.Handle(context.Background(), nil, envelope(t, domain.TaskLoanApply, domain.LoanRequestTask{LoanRequestID: "lr-1"}, 1))
	require.Len(t, f.queue.retried, 1)
	assert.Empty(t, f.queue.dead)

	f.d.Handle(context.Background(), nil, envelope(t, domain.TaskLoanApply, domain.LoanRequestTask{LoanRequestID: "lr-1"}, 3))
	assert.Len(t, f.queue.retried, 1)
	assert.Len(t, f.queue.dead, 1)
}

func TestHandle_RetryCarriesDelayInsteadOfBlocking(t *testing.T) {
	f := newFixture(t)
	f.d.RetryDelay = time.Hour
	f.cards.EXPECT().PollStatus(gomock.Any(), "tx-1").Return(domain.TransactionStatusInProgress, nil).Times(2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.d.Handle(context.Background(), []byte("tx-1"), envelope(t, domain.TaskCardPoll, domain.TransactionTask{TransactionID: "tx-1"}, 1))
		f.d.Handle(context.Background(), []byte("tx-1"), envelope(t, domain.TaskCardPoll, domain.TransactionTask{TransactionID: "tx-1"}, 2))
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Handle blocked on the retry delay")
	}

	assert.Equal(t, []time.Duration{time.Hour, 2 * time.Hour}, f.queue.delays)
}

func TestHandle_PermanentFailureDeadLettersImmediately(t *testing.T) {
	tests := []struct {
		name   string
		env    func(t *testing.T) domain.TaskEnvelope
		expect func(f *fixture)
	}{
		{
			name: "not found",
			env: func(t *testing.T) domain.TaskEnvelope {
				return envelope(t, domain.TaskFinalizeTransaction, domain.TransactionTask{TransactionID: "tx-9"}, 0)
			},
			expect: func(f *fixture) {
				f.completion.EXPECT().Finalize(gomock.Any(), "tx-9").Return(false, domain.ErrTransactionNotFound)
			},
		},
		{
			name:   "unknown task",
			env:    func(t *testing.T) domain.TaskEnvelope { return envelope(t, "image.resize", map[string]string{}, 0) },
			expect: func(*fixture) {},
		},
		{
			name: "malformed payload",
			env: func(t *testing.T) domain.TaskEnvelope {
				return domain.TaskEnvelope{Task: domain.TaskCardInitiate, Payload: json.RawMessage(`"tx-1"`)}
			},
			expect: func(*fixture) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.expect(f)

			f.d.Handle(context.Background(), nil, tt.env(t))

			assert.Empty(t, f.queue.retried)
			assert.Len(t, f.queue.dead, 1)
		})
	}
}

type stubSubscriber struct {
	envs []domain.TaskEnvelope
}

func (s *stubSubscriber) Run(ctx context.Context, handle kafka.TaskHandler) error {
	for _, env := range s.envs {
		handle(ctx, nil, env)
	}
	return nil
}

func TestRun(t *testing.T) {
	f := newFixture(t)
	f.settlement.EXPECT().Unhold(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	worker.Run(context.Background(), f.d,
		&stubSubscriber{envs: []domain.TaskEnvelope{envelope(t, domain.TaskSettlementUnhold, domain.TransactionTask{TransactionID: "a"}, 0)}},
		&stubSubscriber{envs: []domain.TaskEnvelope{envelope(t, domain.TaskSettlementUnhold, domain.TransactionTask{TransactionID: "b"}, 0)}},
	)
}
