package http

import (
	"time"

	"sg-console-srv/internal/checkpoint"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/paginator"
)

type listReq struct {
	Page paginator.Request
}

func (r listReq) toInput() checkpoint.ListInput {
	return checkpoint.ListInput{Page: r.Page}
}

type createReq struct {
	ReplicationID string `json:"-"`
	Name          string `json:"name" binding:"required,max=255"`
	Description   string `json:"description" binding:"max=255"`
}

func (r createReq) toInput() checkpoint.CreateInput {
	return checkpoint.CreateInput{
		ReplicationID: r.ReplicationID,
		Name:          r.Name,
		Description:   r.Description,
	}
}

type updateReq struct {
	ID          string `json:"-"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
}

func (r updateReq) toInput() checkpoint.UpdateInput {
	return checkpoint.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type checkpointResp struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status"`
	ReplicationID   string    `json:"replication_id"`
	ReplicationName string    `json:"replication_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func checkpointID(cp model.Checkpoint) string { return cp.ID }

func (h *handler) newCheckpointResp(cp model.Checkpoint, replicationName string) checkpointResp {
	return checkpointResp{
		ID:              cp.ID,
		Name:            cp.Name,
		Description:     cp.Description,
		Status:          cp.Status,
		ReplicationID:   cp.ReplicationID,
		ReplicationName: replicationName,
		CreatedAt:       cp.CreatedAt,
	}
}

func (h *handler) newListResp(o checkpoint.ListOutput) paginator.PageResponse[checkpointResp] {
	return paginator.NewPageResponse(o.Page, checkpointID, func(cp model.Checkpoint) checkpointResp {
		var name string
		if r, ok := o.Replications[cp.ReplicationID]; ok {
			name = r.DisplayName()
		}
		return h.newCheckpointResp(cp, name)
	})
}

func (h *handler) newGetResp(o checkpoint.GetOutput) checkpointResp {
	var name string
	if o.Replication != nil {
		name = o.Replication.DisplayName()
	}
	return h.newCheckpointResp(o.Checkpoint, name)
}
