package authservice

import "context"

// Demo-режим: идентичности, которые выдает локальная заглушка
const (
	demoUserUID  = "demo-user-123"
	demoAdminUID = "admin-user"
	guestUID     = "guest-demo-user"
	guestEmail   = "guest@wash-e.com"
)

// Stub локальная заглушка сервиса проверки учетных данных (demo-режим).
// Принимает любую непустую пару email/пароль; административная идентичность
// выдается только при полном совпадении настроенных email и пароля.
//
// Заглушка выбирается явной конфигурацией при сборке зависимостей,
// а не глобальным флагом.
type Stub struct {
	adminEmail    string
	adminPassword string
}

// NewStub создает заглушку demo-режима
func NewStub(adminEmail, adminPassword string) *Stub {
	return &Stub{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// SignIn принимает любую непустую пару email/пароль
func (s *Stub) SignIn(_ context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	uid := demoUserUID
	if email == s.adminEmail && password == s.adminPassword {
		uid = demoAdminUID
	}

	return &Identity{UID: uid, Email: email}, nil
}

// SignInAnonymously возвращает фиксированную гостевую идентичность
func (s *Stub) SignInAnonymously(_ context.Context) (*Identity, error) {
	return &Identity{UID: guestUID, Email: guestEmail}, nil
}

// SignOut в demo-режиме ничего не делает
func (s *Stub) SignOut(_ context.Context) error {
	return nil
}
