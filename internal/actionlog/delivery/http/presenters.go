package http

import (
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

type listReq struct {
	Page         paginator.Request
	ResourceType string
}

func (r listReq) toInput() actionlog.ListInput {
	return actionlog.ListInput{
		Page:         r.Page,
		ResourceType: r.ResourceType,
	}
}

type exportReq struct {
	ResourceType string
}

func (r exportReq) toInput() actionlog.ExportInput {
	return actionlog.ExportInput{ResourceType: r.ResourceType}
}

type exportResp struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	FileName  string    `json:"file_name"`
	Rows      int       `json:"rows"`
}

func (h *handler) newExportResp(o actionlog.ExportOutput) exportResp {
	return exportResp{
		URL:       o.URL,
		ExpiresAt: o.ExpiresAt,
		FileName:  o.FileName,
		Rows:      o.Rows,
	}
}

type actionLogResp struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	UserID       string    `json:"user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func actionLogID(a model.ActionLog) string { return a.ID }

func (h *handler) newListResp(o actionlog.ListOutput) paginator.PageResponse[actionLogResp] {
	return paginator.NewPageResponse(o.Page, actionLogID, func(a model.ActionLog) actionLogResp {
		return actionLogResp{
			ID:           a.ID,
			Action:       a.Action,
			ResourceType: a.ResourceType,
			ResourceID:   a.ResourceID,
			UserID:       a.UserID,
			CreatedAt:    a.CreatedAt,
		}
	})
}
