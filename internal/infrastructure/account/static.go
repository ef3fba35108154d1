package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/sportarena/api/internal/domain/user"
	"github.com/sportarena/api/internal/usecase"
)

// StaticVerifier resolves tokens from a fixed table. Used for local runs and
// tests when no account service is configured.
type StaticVerifier struct {
	principals map[string]user.Principal
}

func NewStaticVerifier(adminToken, userToken string) *StaticVerifier {
	principals := make(map[string]user.Principal, 2)
	if adminToken = strings.TrimSpace(adminToken); adminToken != "" {
		principals[adminToken] = user.Principal{UserID: "local-admin", Name: "Local Admin", Role: user.RoleAdmin}
	}
	if userToken = strings.TrimSpace(userToken); userToken != "" {
		principals[userToken] = user.Principal{UserID: "local-user", Name: "Local User", Role: user.RoleUser}
	}

	return &StaticVerifier{principals: principals}
}

func (v *StaticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	principal, ok := v.principals[strings.TrimSpace(token)]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}

	return principal, nil
}
