package apperrors

import "net/http"

// Predefined errors for the booking domain. Messages mirror the ones the
// mobile client already renders, so they stay user-facing Portuguese.

// --- Scheduling (slot validation) ---

var ErrInvalidTimeFormat = New(
	CodeInvalidTimeFormat,
	"agendamento",
	"Horário inválido. Use HH:mm.",
	http.StatusBadRequest,
)

var ErrOutsideBusinessHours = New(
	CodeOutsideBusinessHours,
	"agendamento",
	"Horário fora da janela de atendimento.",
	http.StatusBadRequest,
)

var ErrInvalidDateTime = New(
	CodeInvalidDateTime,
	"agendamento",
	"Data ou horário inválidos.",
	http.StatusBadRequest,
)

var ErrClosedOnSunday = New(
	CodeClosedOnSunday,
	"agendamento",
	"Agendamentos não são permitidos aos domingos.",
	http.StatusBadRequest,
)

var ErrPastDateTime = New(
	CodePastDateTime,
	"agendamento",
	"Não é possível agendar em horário passado.",
	http.StatusBadRequest,
)

var ErrSlotUnavailable = New(
	CodeSlotUnavailable,
	"agendamento",
	"Horário indisponível. Já existe agendamento neste horário.",
	http.StatusConflict,
)

// --- Referenced entities ---

var ErrPetNotFound = New(
	CodeNotFound, "pet", "Pet não encontrado.", http.StatusNotFound,
)

var ErrServiceNotFound = New(
	CodeNotFound, "servico", "Serviço não encontrado.", http.StatusNotFound,
)

var ErrGroomingTypeNotFound = New(
	CodeNotFound, "tosa", "Tosa não encontrada.", http.StatusNotFound,
)

var ErrAppointmentNotFound = New(
	CodeNotFound, "agendamento", "Agendamento não encontrado.", http.StatusNotFound,
)

var ErrProductNotFound = New(
	CodeNotFound, "produto", "Produto não encontrado.", http.StatusNotFound,
)

var ErrAdditionalServiceNotFound = New(
	CodeNotFound, "servico_adicional", "Serviço adicional não encontrado.", http.StatusNotFound,
)

var ErrNotificationNotFound = New(
	CodeNotFound, "notificacao", "Notificação não encontrada.", http.StatusNotFound,
)

var ErrUserNotFound = New(
	CodeNotFound, "usuario", "Usuário não encontrado.", http.StatusNotFound,
)

// --- Accounts ---

// The original API answers duplicate registration with 400, not 409.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists, "usuario", "E-mail já cadastrado.", http.StatusBadRequest,
)

// Login answers 400 for an unknown email, matching the original API, while
// profile lookups use the 404 ErrUserNotFound above.
var ErrUnknownEmail = New(
	CodeNotFound, "auth", "Usuário não encontrado.", http.StatusBadRequest,
)

var ErrInvalidPassword = New(
	CodeInvalidCredentials, "auth", "Senha inválida.", http.StatusUnauthorized,
)

var ErrAccountDeleted = New(
	CodeForbidden, "usuario", "Usuário excluído. Não é possível fazer login.", http.StatusForbidden,
)

var ErrInvalidAppointmentStatus = New(
	CodeInvalidStatus, "agendamento", "Status de agendamento inválido.", http.StatusBadRequest,
)
