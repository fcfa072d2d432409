package clierrors

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
	"github.com/anandhx/Task-Management-System/pkg/translator"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindStorage    Kind = "storage"
	KindUnknown    Kind = "unknown"
)

// CliErr is an error ready to be shown to the user.
type CliErr struct {
	Kind    Kind
	Key     string
	Message string
}

func (e CliErr) Error() string {
	return fmt.Sprintf("Kind: %s, Message: %s", e.Kind, e.Message)
}

// CreateError generates a CliErr with a translated message.
func CreateError(kind Kind, msgKey string, lang string, data map[string]any) CliErr {
	return CliErr{Kind: kind, Key: msgKey, Message: GetTransErrorMsg(msgKey, lang, data)}
}

// FromError classifies err and picks the matching message.
func FromError(err error, lang string) CliErr {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Field {
		case "description":
			return CreateError(KindValidation, MsgInvalidDescription, lang, nil)
		case "deadline":
			return CreateError(KindValidation, MsgInvalidDeadline, lang, nil)
		case "format":
			return CreateError(KindValidation, MsgInvalidExportFormat, lang, nil)
		default:
			return CreateError(KindValidation, MsgInvalidInput, lang, nil)
		}
	}

	cause := err
	kind := KindUnknown
	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		kind = KindStorage
		cause = storageErr.Err
	}
	return CreateError(kind, MsgDatabaseError, lang, map[string]any{"Cause": cause.Error()})
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string, data map[string]any) string {
	l := translator.Localizer(lang)
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	m.TemplateData = data
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
