package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
)

type contactService struct {
	BaseService
	mailer portssvc.Mailer
	inbox  string
}

// NewContactService creates the contact form relay. Messages go to inbox.
func NewContactService(mailer portssvc.Mailer, inbox string) portssvc.ContactSvc {
	return &contactService{mailer: mailer, inbox: inbox}
}

func (s *contactService) Send(ctx context.Context, req dto.ContactRequest) error {
	for _, field := range []string{req.Email, req.HelpType, req.Subject, req.Message} {
		if strings.TrimSpace(field) == "" {
			return apperrors.NewValidationError("Todos os campos são obrigatórios", nil)
		}
	}

	msg, err := contactMail(s.inbox, req)
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to relay contact message", slog.String("help_type", req.HelpType))
		return apperrors.NewInternalServerError("Erro ao enviar mensagem. Por favor, tente novamente mais tarde.", err)
	}
	return nil
}
