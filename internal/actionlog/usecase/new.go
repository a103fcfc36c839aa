package usecase

import (
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/minio"

	"github.com/google/uuid"
)

const (
	defaultExportBucket = "sg-console-exports"
	defaultExportLimit  = 10000
	defaultExportExpiry = 30 * time.Minute
	exportBatchSize     = 500
)

// Config holds configuration for action log exports.
type Config struct {
	ExportBucket string
	ExportLimit  int
	ExportExpiry time.Duration
}

type implUseCase struct {
	l        log.Logger
	repo     repository.PostgresRepository
	producer actionlog.Producer
	minio    minio.MinIO
	config   Config
	now      func() time.Time
	newID    func() string
}

// New creates a new action log UseCase. The API process passes a producer for Record;
// the consumer passes a repository for Store; List and Export need the repository and
// Export also needs minioClient.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	producer actionlog.Producer,
	minioClient minio.MinIO,
	cfg Config,
) actionlog.UseCase {
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}
	if cfg.ExportLimit <= 0 {
		cfg.ExportLimit = defaultExportLimit
	}
	if cfg.ExportExpiry <= 0 {
		cfg.ExportExpiry = defaultExportExpiry
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		producer: producer,
		minio:    minioClient,
		config:   cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
