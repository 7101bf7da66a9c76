package lead

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
)

// NextSteps are the follow-up actions listed in every lead note.
var NextSteps = []string{
	"Responder en menos de 24 horas",
	"Verificar disponibilidad de espacios",
	"Agendar visita si es necesario",
	"Enviar información adicional sobre Moonhaus",
}

// Note is a free-text activity attached to a lead.
type Note struct {
	Body      string
	Timestamp time.Time
}

// NewNote summarizes a submission for the sales team.
func NewNote(sub contact.Submission, tags Tags, loc *time.Location) Note {
	var b strings.Builder

	b.WriteString("📧 Nuevo contacto desde moonhaus.es\n\n")
	b.WriteString("👤 Información del contacto:\n")
	fmt.Fprintf(&b, "• Nombre: %s\n", sub.Name)
	fmt.Fprintf(&b, "• Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "• Teléfono: %s\n", sub.Phone)
	fmt.Fprintf(&b, "• Fecha: %s\n\n", contact.FormatDateTime(sub.ReceivedAt, loc))
	fmt.Fprintf(&b, "💬 Mensaje:\n\"%s\"\n\n", sub.Message)
	b.WriteString("🎯 Próximos pasos:\n")
	for _, step := range NextSteps {
		fmt.Fprintf(&b, "• %s\n", step)
	}
	fmt.Fprintf(&b, "\n📍 Fuente: Formulario de contacto web (%s)", tags.LeadSourceDetail)

	return Note{Body: b.String(), Timestamp: sub.ReceivedAt}
}
