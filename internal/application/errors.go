package application

import (
	"errors"

	"github.com/bnema/universal-accounts-cli/internal/domain"
)

// classify keeps typed errors as they are and gives untyped ones, such as
// transport failures, the supplied kind.
func classify(err error, kind domain.ErrorKind, op string) error {
	var typed *domain.Error
	if errors.As(err, &typed) {
		return err
	}
	return domain.NewError(kind, "", op, err)
}

func asTransient(err error, op string) error {
	return classify(err, domain.KindTransient, op)
}
