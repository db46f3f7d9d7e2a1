package todosdk

// Response is the envelope wrapping every JSON body the service returns.
type Response[T any] struct {
	Status  bool   `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email       string `json:"email" example:"jane@example.com"`
	Password    string `json:"password" example:"Secret#1"`
	FirstName   string `json:"firstName" example:"Jane"`
	LastName    string `json:"lastName" example:"Doe"`
	Gender      string `json:"gender" example:"Female"`
	PhoneNumber string `json:"phoneNumber" example:"+61 400 000 000"`
	Age         int    `json:"age" example:"30"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"Secret#1"`
}

type User struct {
	ID          string `json:"id" example:"01J9Z3K8Q6W2M4N5P7R8S9T0VX"`
	Email       string `json:"email" example:"jane@example.com"`
	FirstName   string `json:"firstName" example:"Jane"`
	LastName    string `json:"lastName" example:"Doe"`
	Gender      string `json:"gender" example:"Female"`
	Age         int    `json:"age" example:"30"`
	PhoneNumber string `json:"phoneNumber" example:"+61 400 000 000"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type AssignRoleRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	RoleName string `json:"roleName" example:"Admin"`
}

type Todo struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"Two litres, full cream"`
	Status      string `json:"status" example:"Pending" enums:"Pending,Completed,InProgress,Overdue,Cancelled"`
}

type CreateTodoRequest struct {
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"Two litres, full cream"`
}

type UpdateTodoRequest struct {
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"Two litres, full cream"`
	Status      string `json:"status" example:"Completed"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string            `json:"status" example:"ok"`
	Uptime  string            `json:"uptime,omitempty" example:"1h2m3s"`
	Version string            `json:"version,omitempty" example:"0.1.0"`
	Checks  map[string]string `json:"checks,omitempty"`
}
