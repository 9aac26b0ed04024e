package identity

type credentials struct {
	Login    string `json:"login" minLength:"3" maxLength:"32" doc:"Login, becomes the owner identity"`
	Password string `json:"password" minLength:"8" doc:"Password"`
}

type registerInput struct {
	Body credentials
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"identity_id"`
	Status string `json:"status"`
}

type loginInput struct {
	Body credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}
