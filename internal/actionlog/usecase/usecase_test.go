package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created  []repository.CreateActionLogOptions
	listOpts []repository.ListActionLogsOptions
	logs     []model.ActionLog
	err      error
}

func (r *fakeRepo) Migrate(ctx context.Context) error { return nil }

func (r *fakeRepo) CreateActionLog(ctx context.Context, opt repository.CreateActionLogOptions) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, opt)
	return nil
}

func (r *fakeRepo) ListActionLogs(ctx context.Context, opt repository.ListActionLogsOptions) ([]model.ActionLog, error) {
	r.listOpts = append(r.listOpts, opt)
	if r.err != nil {
		return nil, r.err
	}
	logs := r.logs
	if opt.Marker != "" {
		for i, l := range logs {
			if l.ID == opt.Marker {
				logs = logs[i+1:]
				break
			}
		}
	}
	if len(logs) > opt.Limit {
		return logs[:opt.Limit], nil
	}
	return logs, nil
}

type fakeProducer struct {
	events []actionlog.ActionEvent
	err    error
}

func (p *fakeProducer) PublishAction(ctx context.Context, event actionlog.ActionEvent) error {
	p.events = append(p.events, event)
	return p.err
}

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo repository.PostgresRepository, producer actionlog.Producer) *implUseCase {
	uc := New(log.NewNop(), repo, producer, nil, Config{}).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "evt-1" }
	return uc
}

func TestRecord(t *testing.T) {
	sc := model.Scope{Token: "tok", ProjectID: "p1", UserID: "u1"}
	in := actionlog.RecordInput{Action: actionlog.ActionDelete, ResourceType: model.ResourceVolume, ResourceID: "vol-1"}

	t.Run("publishes event", func(t *testing.T) {
		p := &fakeProducer{}
		newTestUseCase(nil, p).Record(context.Background(), sc, in)

		require.Len(t, p.events, 1)
		assert.Equal(t, actionlog.ActionEvent{
			ID:           "evt-1",
			Action:       actionlog.ActionDelete,
			ResourceType: model.ResourceVolume,
			ResourceID:   "vol-1",
			ProjectID:    "p1",
			UserID:       "u1",
			CreatedAt:    fixedNow,
		}, p.events[0])
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		p := &fakeProducer{err: errors.New("broker down")}
		assert.NotPanics(t, func() {
			newTestUseCase(nil, p).Record(context.Background(), sc, in)
		})
		assert.Len(t, p.events, 1)
	})

	t.Run("no producer", func(t *testing.T) {
		assert.NotPanics(t, func() {
			newTestUseCase(nil, nil).Record(context.Background(), sc, in)
		})
	})
}

func TestStore(t *testing.T) {
	valid := actionlog.ActionEvent{
		ID:           "evt-1",
		Action:       actionlog.ActionCreate,
		ResourceType: model.ResourceSnapshot,
		ResourceID:   "snap-1",
		ProjectID:    "p1",
	}

	t.Run("persists event", func(t *testing.T) {
		repo := &fakeRepo{}
		require.NoError(t, newTestUseCase(repo, nil).Store(context.Background(), valid))
		require.Len(t, repo.created, 1)
		assert.Equal(t, "snap-1", repo.created[0].ResourceID)
		assert.Equal(t, fixedNow, repo.created[0].CreatedAt)
	})

	t.Run("rejects incomplete event", func(t *testing.T) {
		repo := &fakeRepo{}
		ev := valid
		ev.ResourceID = ""
		err := newTestUseCase(repo, nil).Store(context.Background(), ev)
		assert.ErrorIs(t, err, actionlog.ErrInvalidEvent)
		assert.Empty(t, repo.created)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeRepo{err: repository.ErrFailedToInsert}
		err := newTestUseCase(repo, nil).Store(context.Background(), valid)
		assert.ErrorIs(t, err, repository.ErrFailedToInsert)
	})
}

func TestList(t *testing.T) {
	logs := []model.ActionLog{{ID: "a3"}, {ID: "a2"}, {ID: "a1"}}
	sc := model.Scope{ProjectID: "p1"}

	t.Run("first page", func(t *testing.T) {
		repo := &fakeRepo{logs: logs}
		out, err := newTestUseCase(repo, nil).List(context.Background(), sc, actionlog.ListInput{
			Page:         paginator.Request{PageSize: 2},
			ResourceType: model.ResourceVolume,
		})
		require.NoError(t, err)
		assert.Equal(t, []model.ActionLog{{ID: "a3"}, {ID: "a2"}}, out.Page.Items)
		assert.True(t, out.Page.HasMore)
		assert.False(t, out.Page.HasPrev)

		require.Len(t, repo.listOpts, 1)
		assert.Equal(t, repository.ListActionLogsOptions{
			ProjectID:     "p1",
			ResourceTypes: []string{model.ResourceVolume},
			Sort:          "created_at:desc",
			Limit:         3,
		}, repo.listOpts[0])
	})

	t.Run("unknown marker", func(t *testing.T) {
		repo := &fakeRepo{err: repository.ErrMarkerNotFound}
		out, err := newTestUseCase(repo, nil).List(context.Background(), sc, actionlog.ListInput{
			Page: paginator.Request{Marker: "gone", PageSize: 2},
		})
		assert.ErrorIs(t, err, actionlog.ErrMarkerNotFound)
		assert.ErrorIs(t, err, paginator.ErrRetrievalFailed)
		assert.Empty(t, out.Page.Items)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeRepo{err: repository.ErrFailedToList}
		_, err := newTestUseCase(repo, nil).List(context.Background(), sc, actionlog.ListInput{
			Page: paginator.Request{PageSize: 2},
		})
		assert.ErrorIs(t, err, paginator.ErrRetrievalFailed)
		assert.NotErrorIs(t, err, actionlog.ErrMarkerNotFound)
	})

	t.Run("no project never queries", func(t *testing.T) {
		repo := &fakeRepo{logs: logs}
		out, err := newTestUseCase(repo, nil).List(context.Background(), model.Scope{Token: "any-garbage-token"}, actionlog.ListInput{
			Page: paginator.Request{PageSize: 2},
		})
		assert.ErrorIs(t, err, actionlog.ErrProjectRequired)
		assert.Empty(t, out.Page.Items)
		assert.Empty(t, repo.listOpts)
	})
}
