package member

import (
	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Member is the API response model for a household member.
type Member struct {
	ID      string `json:"id" doc:"Member UUID"`
	User    string `json:"user" doc:"Owner UUID"`
	Name    string `json:"name" doc:"Display name"`
	Icon    string `json:"icon" doc:"Icon identifier"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

type CreateMemberBody struct {
	Name string `json:"name" minLength:"1" doc:"Display name"`
	Icon string `json:"icon,omitempty" doc:"Icon identifier"`
}

type UpdateMemberBody struct {
	Name *string `json:"name,omitempty" minLength:"1"`
	Icon *string `json:"icon,omitempty"`
}

// Register registers the member endpoints with the Huma API.
func Register(api huma.API, svc records.RecordService[ledger.Member]) {
	(&records.Resource[ledger.Member, CreateMemberBody, UpdateMemberBody, Member]{
		Singular: "member",
		Plural:   "members",
		Path:     "/v1/members",
		Tag:      "Members",
		Service:  svc,
		FromBody: func(actor access.Actor, body CreateMemberBody) (ledger.Member, error) {
			return ledger.Member{Meta: ledger.Meta{User: actor.ID}, Name: body.Name, Icon: body.Icon}, nil
		},
		FromPatch: func(body UpdateMemberBody) (service.Patch[ledger.Member], error) {
			return service.MemberPatch{Name: omit.FromPtr(body.Name), Icon: omit.FromPtr(body.Icon)}, nil
		},
		ToOutput: func(m ledger.Member) Member {
			return Member{
				ID:      m.ID.String(),
				User:    m.User.String(),
				Name:    m.Name,
				Icon:    m.Icon,
				Created: records.FormatTime(m.Created),
				Updated: records.FormatTime(m.Updated),
			}
		},
	}).Register(api)
}
