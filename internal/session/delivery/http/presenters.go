package http

import (
	"insight-srv/internal/session"
)

type getReq struct {
	Token string
	Lang  string
}

func (r getReq) toInput() session.GetInput {
	return session.GetInput{
		Token: r.Token,
		Lang:  r.Lang,
	}
}

type userResp struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	EmailActivated bool   `json:"email_activated"`
	ExpiresAt      string `json:"expires_at,omitempty"`
}

type sessionResp struct {
	Authenticated bool      `json:"authenticated"`
	DisplayName   string    `json:"display_name"`
	DisplayEmail  string    `json:"display_email,omitempty"`
	User          *userResp `json:"user,omitempty"`
}

func (h *handler) newSessionResp(o session.SessionOutput) sessionResp {
	resp := sessionResp{
		Authenticated: o.Authenticated,
		DisplayName:   o.DisplayName,
		DisplayEmail:  o.DisplayEmail,
	}
	if o.User != nil {
		resp.User = &userResp{
			ID:             o.User.ID,
			Name:           o.User.Nome,
			Email:          o.User.Email,
			Phone:          o.User.Phone,
			EmailActivated: o.User.EmailAtivado,
			ExpiresAt:      o.User.ExpiresAt,
		}
	}
	return resp
}
