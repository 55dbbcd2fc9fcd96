package response

import (
	"time"

	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/queries"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type IncidentResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	ReporterID       uuid.UUID  `json:"reporter_id"`
	ReporterUsername string     `json:"reporter_username,omitempty"`
	AssigneeID       *uuid.UUID `json:"assignee_id,omitempty"`
	ResolutionTime   *int32     `json:"resolution_time,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromIncidentView(v *queries.IncidentView) (*IncidentResponse, error) {
	var resp IncidentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to map incident view")
	}
	return &resp, nil
}

func FromIncidentList(items []*queries.IncidentView) ([]*IncidentResponse, error) {
	res := make([]*IncidentResponse, len(items))
	for i, it := range items {
		resp, err := FromIncidentView(it)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}

// FromIncidentSnapshot maps the write-side result of a status update.
// The reporter username is not part of the snapshot and stays empty.
func FromIncidentSnapshot(s *shared.IncidentSnapshot) (*IncidentResponse, error) {
	var resp IncidentResponse
	if err := copier.Copy(&resp, s); err != nil {
		return nil, errs.Wrap(err, "failed to map incident snapshot")
	}
	return &resp, nil
}
