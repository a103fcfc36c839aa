package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/minio"
	"sg-console-srv/pkg/paginator"
)

const exportContentType = "text/csv; charset=utf-8"

var exportHeader = []string{"id", "created_at", "action", "resource_type", "resource_id", "project_id", "user_id"}

// Export dumps at most config.ExportLimit rows, newest first, and uploads them as CSV.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input actionlog.ExportInput) (actionlog.ExportOutput, error) {
	if sc.ProjectID == "" {
		return actionlog.ExportOutput{}, actionlog.ErrProjectRequired
	}
	if uc.minio == nil {
		return actionlog.ExportOutput{}, actionlog.ErrExportUnavailable
	}

	logs, err := uc.collect(ctx, sc, input)
	if err != nil {
		uc.l.Errorf(ctx, "actionlog.usecase.Export: collect failed: %v", err)
		return actionlog.ExportOutput{}, fmt.Errorf("%w: %w", actionlog.ErrExportFailed, err)
	}

	body, err := encodeCSV(logs)
	if err != nil {
		uc.l.Errorf(ctx, "actionlog.usecase.Export: encode failed: %v", err)
		return actionlog.ExportOutput{}, fmt.Errorf("%w: %w", actionlog.ErrExportFailed, err)
	}

	now := uc.now().UTC()
	fileName := fmt.Sprintf("action-logs-%s.csv", now.Format("20060102T150405Z"))
	objectName := fmt.Sprintf("action-logs/%s/%s-%s", sc.ProjectID, uc.newID(), fileName)

	_, err = uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: exportContentType,
		Metadata: map[string]string{
			"project_id":    sc.ProjectID,
			"resource_type": input.ResourceType,
			"rows":          fmt.Sprint(len(logs)),
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "actionlog.usecase.Export: Upload failed: %v", err)
		return actionlog.ExportOutput{}, fmt.Errorf("%w: %w", actionlog.ErrExportFailed, err)
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ExportBucket,
		ObjectName: objectName,
		Expiry:     uc.config.ExportExpiry,
		FileName:   fileName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "actionlog.usecase.Export: Failed to generate presigned URL: %v", err)
		return actionlog.ExportOutput{}, fmt.Errorf("%w: %w", actionlog.ErrExportFailed, err)
	}

	uc.l.Infof(ctx, "actionlog.usecase.Export: Exported %d rows to %s", len(logs), objectName)

	return actionlog.ExportOutput{
		URL:       presigned.URL,
		ExpiresAt: presigned.ExpiresAt,
		FileName:  fileName,
		Rows:      len(logs),
	}, nil
}

// collect walks the keyset pages newest first until a short page or the export limit.
func (uc *implUseCase) collect(ctx context.Context, sc model.Scope, input actionlog.ExportInput) ([]model.ActionLog, error) {
	var resourceTypes []string
	if input.ResourceType != "" {
		resourceTypes = []string{input.ResourceType}
	}

	var (
		logs   []model.ActionLog
		marker string
	)
	for len(logs) < uc.config.ExportLimit {
		limit := min(exportBatchSize, uc.config.ExportLimit-len(logs))
		batch, err := uc.repo.ListActionLogs(ctx, repository.ListActionLogsOptions{
			ProjectID:     sc.ProjectID,
			ResourceTypes: resourceTypes,
			Marker:        marker,
			Sort:          paginator.Request{Direction: paginator.DirectionDesc}.Sort(),
			Limit:         limit,
		})
		if err != nil {
			return nil, err
		}

		logs = append(logs, batch...)
		if len(batch) < limit {
			break
		}
		marker = batch[len(batch)-1].ID
	}
	return logs, nil
}

func encodeCSV(logs []model.ActionLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, a := range logs {
		if err := w.Write([]string{
			a.ID,
			a.CreatedAt.UTC().Format(time.RFC3339),
			a.Action,
			a.ResourceType,
			a.ResourceID,
			a.ProjectID,
			a.UserID,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
