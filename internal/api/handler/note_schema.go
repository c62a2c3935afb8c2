package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=5"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type noteRequest struct {
	Title string `json:"title" validate:"required,max=50"`
	Text  string `json:"text"  validate:"required,max=300"`
}

// --- Response types ---

type tokenResponse struct {
	Token string `json:"token"`
}
