package profileedit

import (
	"context"
	"errors"
	"fmt"

	"tablero.dev/tablero/pkg/app"
	"tablero.dev/tablero/pkg/printers"
)

// ProfileEdit shows the stored profile, or saves a new one when any field
// flag was supplied. Empty fields keep their stored values.
type ProfileEdit struct {
	Name    string
	Email   string
	Area    string
	Service *app.Service
}

func (p *ProfileEdit) Do(ctx context.Context) error {
	if p.Service == nil {
		return errors.New("can not edit profile, no service")
	}
	p.Service.RestoreProfile()

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if p.Name == "" && p.Email == "" && p.Area == "" {
		pp.Title("Perfil")
		pp.Profile(p.Service.Store.Profile())
		return nil
	}

	saved, err := p.Service.SaveProfile(p.Name, p.Email, p.Area)
	if err != nil {
		return err
	}
	pp.Title("Perfil guardado")
	pp.Profile(saved)
	return nil
}
