package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tablero.dev/tablero/pkg/app"
	"tablero.dev/tablero/pkg/printers"
)

// Get prints one collection, or every collection when Collection is empty.
type Get struct {
	Collection string
	JSON       bool
	Service    *app.Service
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get, no service")
	}
	if err := g.Service.LoadAll(ctx); err != nil {
		return err
	}

	if g.JSON {
		return g.printJSON()
	}

	pp := printers.PrettyPrint{}
	store := g.Service.Store
	fmt.Println("")

	printOne := map[string]func(){
		"cursos":        func() { pp.TitleWithCount("Cursos", len(store.Courses())); pp.Courses(store.Courses()) },
		"especialistas": func() { pp.TitleWithCount("Especialistas", len(store.Specialists())); pp.Specialists(store.Specialists()) },
		"calendario":    func() { pp.TitleWithCount("Calendario", len(store.Events())); pp.Events(store.Events()) },
		"habilidades":   func() { pp.TitleWithCount("Habilidades", len(store.Skills())); pp.Skills(store.Skills()) },
		"evaluaciones":  func() { pp.TitleWithCount("Evaluaciones", len(store.Evaluations())); pp.Evaluations(store.Evaluations()) },
		"documentacion": func() { pp.TitleWithCount("Documentación", len(store.Documents())); pp.Documents(store.Documents()) },
		"pte":           func() { pp.TitleWithCount("Pendientes", len(store.Tasks())); pp.Tasks(store.Tasks()) },
	}

	if g.Collection != "" {
		print, ok := printOne[g.Collection]
		if !ok {
			return fmt.Errorf("unknown collection %q", g.Collection)
		}
		print()
		return nil
	}

	pp.Title("Resumen")
	pp.Summary(g.Service.Summary())
	for _, name := range []string{"cursos", "especialistas", "calendario", "habilidades", "evaluaciones", "documentacion", "pte"} {
		printOne[name]()
	}
	return nil
}

func (g *Get) printJSON() error {
	store := g.Service.Store
	payload := map[string]interface{}{
		"cursos":        store.Courses(),
		"especialistas": store.Specialists(),
		"calendario":    store.Events(),
		"habilidades":   store.Skills(),
		"evaluaciones":  store.Evaluations(),
		"documentacion": store.Documents(),
		"pte":           store.Tasks(),
	}
	if g.Collection != "" {
		one, ok := payload[g.Collection]
		if !ok {
			return fmt.Errorf("unknown collection %q", g.Collection)
		}
		payload = map[string]interface{}{g.Collection: one}
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
