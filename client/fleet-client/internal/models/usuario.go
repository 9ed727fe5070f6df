package models

// Usuario is the read-only user profile.
type Usuario struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome,omitempty"`
	Email string `json:"email,omitempty"`
}

// UsuarioInput mirrors the editable profile fields. No write path uses it yet.
type UsuarioInput struct {
	Nome  string
	Email string `validate:"omitempty,email"`
}
