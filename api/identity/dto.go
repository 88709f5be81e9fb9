package identity

// AuthRequest is the body of the register and login requests.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Solved   int    `json:"solved"`
	Token    string `json:"token"`
}
