package request

type CreateUser struct {
	Username string `json:"username" binding:"required"`
	ProxyID  string `json:"proxyID" binding:"required"`
}
