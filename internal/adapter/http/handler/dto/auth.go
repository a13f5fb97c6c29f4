package dto

import (
	"net/http"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/pkg/validator"
)

// LoginForm is the credentials form posted by the login page.
type LoginForm struct {
	Email    string
	Password string
}

func LoginFormFromRequest(r *http.Request) *LoginForm {
	return &LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
}

func ValidateLogin(v *validator.Validator, form *LoginForm) {
	v.Check(form.Email != "", "email", "must be provided")
	v.Check(validator.Matches(form.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(form.Password != "", "password", "must be provided")
}

// RegisterForm is the full profile form posted by the registration page.
type RegisterForm struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	City        string
	State       string
	Country     string
	ZipCode     string
}

func RegisterFormFromRequest(r *http.Request) *RegisterForm {
	return &RegisterForm{
		FirstName:   r.PostFormValue("firstName"),
		LastName:    r.PostFormValue("lastName"),
		Email:       r.PostFormValue("email"),
		Password:    r.PostFormValue("password"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
		City:        r.PostFormValue("city"),
		State:       r.PostFormValue("state"),
		Country:     r.PostFormValue("country"),
		ZipCode:     r.PostFormValue("zipCode"),
	}
}

func (f *RegisterForm) ToModel() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Password:    f.Password,
		PhoneNumber: f.PhoneNumber,
		City:        f.City,
		State:       f.State,
		Country:     f.Country,
		ZipCode:     f.ZipCode,
	}
}

func ValidateRegister(v *validator.Validator, form *RegisterForm) {
	v.Check(form.FirstName != "", "firstName", "must be provided")
	v.Check(form.LastName != "", "lastName", "must be provided")

	v.Check(form.Email != "", "email", "must be provided")
	v.Check(validator.Matches(form.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(len(form.Email) <= 500, "email", "must not be more than 500 bytes long")

	v.Check(form.Password != "", "password", "must be provided")
	v.Check(len(form.Password) >= 8, "password", "must be at least 8 bytes long")
	v.Check(len(form.Password) <= 50, "password", "must not be more than 50 bytes long")

	v.Check(form.PhoneNumber != "", "phoneNumber", "must be provided")
}
