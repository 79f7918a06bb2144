package models

type TestSMSParams struct {
	To      string `json:"to" binding:"required,e164"`
	Message string `json:"message" binding:"required"`
}

type OTPSMSParams struct {
	To       string `json:"to" binding:"required,e164"`
	Code     string `json:"code" binding:"required,min=4,max=10"`
	Purpose  string `json:"purpose" binding:"omitempty,oneof=generic login registration password_reset"`
	Language string `json:"language"`
}

type SMSResponse struct {
	Success bool   `json:"success"`
	Sid     string `json:"sid"`
}

type SendEmailParams struct {
	To       string            `json:"to" binding:"required,email"`
	Template string            `json:"template" binding:"required"`
	Language string            `json:"language"`
	Params   map[string]string `json:"params"`
}

type SendExampleEmailParams struct {
	To       string `json:"to" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Language string `json:"language"`
}

type PreviewEmailQuery struct {
	Name     string `form:"name"`
	Language string `form:"language"`
	Template string `form:"template"`
}

type EmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
