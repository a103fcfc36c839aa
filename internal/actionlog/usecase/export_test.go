package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/minio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinIO struct {
	minio.MinIO
	uploads   []*minio.UploadRequest
	bodies    []string
	presigned []*minio.PresignedURLRequest
	uploadErr error
}

func (m *fakeMinIO) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	body, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	m.uploads = append(m.uploads, req)
	m.bodies = append(m.bodies, string(body))
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (m *fakeMinIO) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	m.presigned = append(m.presigned, req)
	return &minio.PresignedURLResponse{
		URL:       "https://minio.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: fixedNow.Add(req.Expiry),
		Method:    minio.MethodGET,
	}, nil
}

func newExportUseCase(repo repository.PostgresRepository, m minio.MinIO, cfg Config) *implUseCase {
	uc := New(log.NewNop(), repo, nil, m, cfg).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "exp-1" }
	return uc
}

func TestExport(t *testing.T) {
	sc := model.Scope{ProjectID: "p1"}
	created := time.Date(2026, 2, 28, 9, 30, 0, 0, time.UTC)

	t.Run("uploads csv and presigns", func(t *testing.T) {
		repo := &fakeRepo{logs: []model.ActionLog{
			{ID: "a2", Action: "delete", ResourceType: "volume", ResourceID: "vol-2", ProjectID: "p1", UserID: "u1", CreatedAt: created},
			{ID: "a1", Action: "create", ResourceType: "volume", ResourceID: "vol-1", ProjectID: "p1", CreatedAt: created},
		}}
		m := &fakeMinIO{}

		out, err := newExportUseCase(repo, m, Config{}).Export(context.Background(), sc, actionlog.ExportInput{ResourceType: "volume"})
		require.NoError(t, err)

		assert.Equal(t, 2, out.Rows)
		assert.Equal(t, "action-logs-20260301T100000Z.csv", out.FileName)
		assert.Equal(t, "https://minio.local/sg-console-exports/action-logs/p1/exp-1-action-logs-20260301T100000Z.csv", out.URL)
		assert.Equal(t, fixedNow.Add(30*time.Minute), out.ExpiresAt)

		require.Len(t, m.uploads, 1)
		assert.Equal(t, "text/csv; charset=utf-8", m.uploads[0].ContentType)
		assert.Equal(t, "id,created_at,action,resource_type,resource_id,project_id,user_id\n"+
			"a2,2026-02-28T09:30:00Z,delete,volume,vol-2,p1,u1\n"+
			"a1,2026-02-28T09:30:00Z,create,volume,vol-1,p1,\n", m.bodies[0])

		require.Len(t, m.presigned, 1)
		assert.Equal(t, out.FileName, m.presigned[0].FileName)

		require.Len(t, repo.listOpts, 1)
		assert.Equal(t, []string{"volume"}, repo.listOpts[0].ResourceTypes)
		assert.Equal(t, "created_at:desc", repo.listOpts[0].Sort)
	})

	t.Run("pages until the limit", func(t *testing.T) {
		var logs []model.ActionLog
		for i := 1200; i > 0; i-- {
			logs = append(logs, model.ActionLog{ID: fmt.Sprintf("a%d", i), CreatedAt: created})
		}
		repo := &fakeRepo{logs: logs}
		m := &fakeMinIO{}

		out, err := newExportUseCase(repo, m, Config{ExportLimit: 1100}).Export(context.Background(), sc, actionlog.ExportInput{})
		require.NoError(t, err)
		assert.Equal(t, 1100, out.Rows)

		require.Len(t, repo.listOpts, 3)
		assert.Equal(t, "", repo.listOpts[0].Marker)
		assert.Equal(t, 500, repo.listOpts[0].Limit)
		assert.Equal(t, "a701", repo.listOpts[1].Marker)
		assert.Equal(t, "a201", repo.listOpts[2].Marker)
		assert.Equal(t, 100, repo.listOpts[2].Limit)
	})

	t.Run("no project never queries", func(t *testing.T) {
		repo := &fakeRepo{logs: []model.ActionLog{{ID: "a1", ProjectID: "p2"}}}
		m := &fakeMinIO{}
		_, err := newExportUseCase(repo, m, Config{}).Export(context.Background(), model.Scope{Token: "tok"}, actionlog.ExportInput{})
		assert.ErrorIs(t, err, actionlog.ErrProjectRequired)
		assert.Empty(t, repo.listOpts)
		assert.Empty(t, m.uploads)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := newExportUseCase(&fakeRepo{}, nil, Config{}).Export(context.Background(), sc, actionlog.ExportInput{})
		assert.ErrorIs(t, err, actionlog.ErrExportUnavailable)
	})

	t.Run("repository failure", func(t *testing.T) {
		m := &fakeMinIO{}
		_, err := newExportUseCase(&fakeRepo{err: repository.ErrFailedToList}, m, Config{}).Export(context.Background(), sc, actionlog.ExportInput{})
		assert.ErrorIs(t, err, actionlog.ErrExportFailed)
		assert.ErrorIs(t, err, repository.ErrFailedToList)
		assert.Empty(t, m.uploads)
	})

	t.Run("upload failure", func(t *testing.T) {
		m := &fakeMinIO{uploadErr: errors.New("bucket not found")}
		_, err := newExportUseCase(&fakeRepo{}, m, Config{}).Export(context.Background(), sc, actionlog.ExportInput{})
		assert.ErrorIs(t, err, actionlog.ErrExportFailed)
		assert.Empty(t, m.presigned)
	})
}
