package mapping

import (
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	imagePath, imageFilename := toModelImage(d.Image)
	return models.User{
		UserID:                   d.UserID,
		Email:                    d.Email,
		Name:                     d.Name,
		LastName:                 d.LastName,
		PasswordHash:             d.PasswordHash,
		Verified:                 d.Verified,
		GoogleID:                 d.GoogleID,
		ImagePath:                imagePath,
		ImageFilename:            imageFilename,
		VerificationToken:        d.VerificationToken,
		VerificationTokenExpires: d.VerificationTokenExpires,
		ResetPasswordToken:       d.ResetPasswordToken,
		ResetPasswordExpires:     d.ResetPasswordExpires,
		AuditFields:              ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                   m.UserID,
		Email:                    m.Email,
		Name:                     m.Name,
		LastName:                 m.LastName,
		PasswordHash:             m.PasswordHash,
		Verified:                 m.Verified,
		GoogleID:                 m.GoogleID,
		Image:                    toDomainImage(m.ImagePath, m.ImageFilename),
		VerificationToken:        m.VerificationToken,
		VerificationTokenExpires: m.VerificationTokenExpires,
		ResetPasswordToken:       m.ResetPasswordToken,
		ResetPasswordExpires:     m.ResetPasswordExpires,
		AuditFields:              ToDomainAuditFields(m.AuditFields),
	}
}
