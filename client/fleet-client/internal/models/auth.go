package models

// LoginRequest is the body of POST /autenticacao/login.
type LoginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

// LoginResponse carries the bearer token and the user id.
type LoginResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
}

// CadastroRequest is the body of POST /autenticacao/cadastrar.
type CadastroRequest struct {
	Username     string `json:"username"`
	Senha        string `json:"senha"`
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	Email        string `json:"email,omitempty"`
}

// CadastroResponse is the created account.
type CadastroResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	Email        string `json:"email,omitempty"`
}

// CadastroInput is the registration form, including the password confirmation the API never sees.
type CadastroInput struct {
	Username       string `validate:"required,min=3"`
	Senha          string `validate:"required,min=6"`
	ConfirmarSenha string `validate:"omitempty,eqfield=Senha"`
	NomeCompleto   string `validate:"omitempty,min=3"`
	Email          string `validate:"omitempty,email"`
}

// Request drops the confirmation field.
func (in CadastroInput) Request() CadastroRequest {
	return CadastroRequest{
		Username:     in.Username,
		Senha:        in.Senha,
		NomeCompleto: in.NomeCompleto,
		Email:        in.Email,
	}
}
