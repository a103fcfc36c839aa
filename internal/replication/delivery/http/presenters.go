package http

import (
	"time"

	"sg-console-srv/internal/model"
	"sg-console-srv/internal/replication"
	"sg-console-srv/pkg/paginator"
)

type listReq struct {
	Page paginator.Request
}

func (r listReq) toInput() replication.ListInput {
	return replication.ListInput{Page: r.Page}
}

type createReq struct {
	Name         string `json:"name" binding:"max=255"`
	Description  string `json:"description"`
	MasterVolume string `json:"master_volume"`
	SlaveVolume  string `json:"slave_volume"`
}

func (r createReq) toInput() replication.CreateInput {
	return replication.CreateInput{
		Name:         r.Name,
		Description:  r.Description,
		MasterVolume: r.MasterVolume,
		SlaveVolume:  r.SlaveVolume,
	}
}

type updateReq struct {
	ID          string `json:"-"`
	Name        string `json:"name" binding:"max=255"`
	Description string `json:"description"`
}

func (r updateReq) toInput() replication.UpdateInput {
	return replication.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type volumeRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type replicationResp struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	MasterVolume volumeRef `json:"master_volume"`
	SlaveVolume  volumeRef `json:"slave_volume"`
	CreatedAt    time.Time `json:"created_at"`
}

func replicationID(r model.Replication) string { return r.ID }

func newVolumeRef(id string, v *model.Volume) volumeRef {
	ref := volumeRef{ID: id}
	if v != nil {
		ref.Name = v.DisplayName()
	}
	return ref
}

func (h *handler) newReplicationResp(r model.Replication, master, slave *model.Volume) replicationResp {
	return replicationResp{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Status:       r.Status,
		MasterVolume: newVolumeRef(r.MasterVolume, master),
		SlaveVolume:  newVolumeRef(r.SlaveVolume, slave),
		CreatedAt:    r.CreatedAt,
	}
}

func (h *handler) newListResp(o replication.ListOutput) paginator.PageResponse[replicationResp] {
	pick := func(id string) *model.Volume {
		if v, ok := o.Volumes[id]; ok {
			return &v
		}
		return nil
	}
	return paginator.NewPageResponse(o.Page, replicationID, func(r model.Replication) replicationResp {
		return h.newReplicationResp(r, pick(r.MasterVolume), pick(r.SlaveVolume))
	})
}

func (h *handler) newGetResp(o replication.GetOutput) replicationResp {
	return h.newReplicationResp(o.Replication, o.MasterVolume, o.SlaveVolume)
}
