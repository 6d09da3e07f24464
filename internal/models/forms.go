package models

// Form models bound from the HTML pages. Binding tags are go-playground/validator rules.

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	Nom      string `form:"nom" binding:"required"`
	Prenom   string `form:"prenom" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type ForgotPasswordForm struct {
	Email string `form:"email" binding:"required,email"`
}

type ResetPasswordForm struct {
	Token           string `form:"token"`
	NewPassword     string `form:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" binding:"required"`
}

// AvailableTimes are the bookable slots offered by the new-appointment form.
var AvailableTimes = []string{
	"09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00",
}

type NewAppointmentForm struct {
	Date  string `form:"date" binding:"required,datetime=2006-01-02"`
	Time  string `form:"time" binding:"required,oneof=09:00 10:00 11:00 14:00 15:00 16:00 17:00"`
	Motif string `form:"motif" binding:"required,notblank,max=500"`
}

// DateHeure joins the chosen day and slot into the backend's LocalDateTime format.
func (f NewAppointmentForm) DateHeure() string {
	return f.Date + "T" + f.Time + ":00"
}
