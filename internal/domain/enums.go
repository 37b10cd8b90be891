package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}

// UserRole defines the operator roles.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleAtendente UserRole = "atendente"
)

// ValidUserRoles lists every accepted operator role.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:     true,
	RoleAtendente: true,
}

// FileStatus tracks an uploaded schedule file through text extraction.
type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusUploaded   FileStatus = "uploaded"
	FileStatusExtracting FileStatus = "extracting"
	FileStatusExtracted  FileStatus = "extracted"
	FileStatusFailed     FileStatus = "failed"
	FileStatusDeleted    FileStatus = "deleted"
)

// AppointmentStatus is the agenda lifecycle of an appointment.
type AppointmentStatus string

const (
	AppointmentAguardando    AppointmentStatus = "aguardando"
	AppointmentConfirmado    AppointmentStatus = "confirmado"
	AppointmentEmAtendimento AppointmentStatus = "em_atendimento"
	AppointmentConcluido     AppointmentStatus = "concluido"
	AppointmentCancelado     AppointmentStatus = "cancelado"
)

// ValidAppointmentStatuses lists every accepted agenda status.
var ValidAppointmentStatuses = map[AppointmentStatus]bool{
	AppointmentAguardando:    true,
	AppointmentConfirmado:    true,
	AppointmentEmAtendimento: true,
	AppointmentConcluido:     true,
	AppointmentCancelado:     true,
}

// ApprovalType identifies which pending queue an item belongs to.
type ApprovalType string

const (
	ApprovalCarteirinha ApprovalType = "carteirinha"
	ApprovalAgendamento ApprovalType = "agendamento"
)

// ApprovalStatus is the decision state of an approval item. Decisions are
// terminal.
type ApprovalStatus string

const (
	ApprovalPendente   ApprovalStatus = "pendente"
	ApprovalAprovado   ApprovalStatus = "aprovado"
	ApprovalCancelado  ApprovalStatus = "cancelado"
	ApprovalReagendado ApprovalStatus = "reagendado"
)

// CampaignStatus is the lifecycle of a bulk dispatch campaign.
type CampaignStatus string

const (
	CampaignRascunho  CampaignStatus = "rascunho"
	CampaignEnviando  CampaignStatus = "enviando"
	CampaignConcluido CampaignStatus = "concluido"
	CampaignFalhou    CampaignStatus = "falhou"
)

// MessageStatus is the delivery state of one campaign message.
type MessageStatus string

const (
	MessagePendente MessageStatus = "pendente"
	MessageEnviado  MessageStatus = "enviado"
	MessageFalhou   MessageStatus = "falhou"
)
