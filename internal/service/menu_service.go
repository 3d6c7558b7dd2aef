package service

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"turnero/internal/db"
	"turnero/internal/entities"
	"turnero/internal/repository"
)

// CatalogStore is the read-only specialty catalog the menu resolves against.
type CatalogStore interface {
	ListSpecialties() ([]db.Specialty, error)
	GetSpecialty(id string) (*db.Specialty, error)
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// xmlSanitizer escapes markup-significant characters in names before they
// are interpolated into reply text, since the reply ends up inside the
// Twilio XML envelope.
var xmlSanitizer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type MenuService struct {
	catalog CatalogStore
	baseURL string
}

// NewMenuService builds the resolver. baseURL is the public web address the
// booking links point at (WEB_URL).
func NewMenuService(catalog CatalogStore, baseURL string) *MenuService {
	return &MenuService{catalog: catalog, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Resolve maps one raw incoming message to a MenuReply. There is no session:
// every message is interpreted from a blank slate, so a bare digit string is
// always a specialty id, never a choice within a previously sent submenu.
// Unparseable or unknown input is a normal MenuUnrecognized reply; the only
// errors returned are catalog failures.
func (s *MenuService) Resolve(rawText string) (*entities.MenuReply, error) {
	text := strings.TrimSpace(rawText)

	switch {
	case text == "1":
		specialties, err := s.catalog.ListSpecialties()
		if err != nil {
			return nil, fmt.Errorf("resolving top-level menu: %w", err)
		}
		reply := &entities.MenuReply{Kind: entities.MenuTopLevel}
		for _, spec := range specialties {
			reply.Options = append(reply.Options, entities.MenuOption{
				Key:   spec.ID,
				Label: xmlSanitizer.Replace(spec.Name),
			})
		}
		return reply, nil

	case digitsOnly.MatchString(text):
		spec, err := s.catalog.GetSpecialty(text)
		if errors.Is(err, repository.ErrSpecialtyNotFound) {
			return &entities.MenuReply{Kind: entities.MenuUnrecognized}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolving specialty '%s': %w", text, err)
		}
		if len(spec.Practitioners) == 1 {
			practitioner := spec.Practitioners[0]
			return &entities.MenuReply{
				Kind:          entities.MenuDirectLink,
				SpecialtyName: xmlSanitizer.Replace(spec.Name),
				Practitioner:  xmlSanitizer.Replace(practitioner),
				URL:           s.bookingURL(practitioner),
			}, nil
		}
		reply := &entities.MenuReply{
			Kind:          entities.MenuSpecialty,
			SpecialtyName: xmlSanitizer.Replace(spec.Name),
		}
		for i, practitioner := range spec.Practitioners {
			reply.Options = append(reply.Options, entities.MenuOption{
				Key:   strconv.Itoa(i + 1),
				Label: xmlSanitizer.Replace(practitioner),
			})
		}
		return reply, nil

	default:
		return &entities.MenuReply{Kind: entities.MenuUnrecognized}, nil
	}
}

func (s *MenuService) bookingURL(practitioner string) string {
	return s.baseURL + "/calendar.html?medico=" + url.QueryEscape(practitioner)
}

// FormatMenuReply renders a MenuReply as the WhatsApp message text.
func FormatMenuReply(reply *entities.MenuReply) string {
	switch reply.Kind {
	case entities.MenuTopLevel:
		var b strings.Builder
		b.WriteString("🏥 *Consultorio Médico*\nElija especialidad:\n\n")
		for _, opt := range reply.Options {
			fmt.Fprintf(&b, "%s. %s\n", opt.Key, opt.Label)
		}
		b.WriteString("\nEnvía el número")
		return b.String()

	case entities.MenuSpecialty:
		var b strings.Builder
		fmt.Fprintf(&b, "📋 %s\n\nElija médico:\n\n", reply.SpecialtyName)
		for _, opt := range reply.Options {
			fmt.Fprintf(&b, "%s. %s\n", opt.Key, opt.Label)
		}
		return b.String()

	case entities.MenuDirectLink:
		return fmt.Sprintf("🔗 %s\n\nPara agendar con %s, visite:\n%s",
			reply.SpecialtyName, reply.Practitioner, reply.URL)

	default:
		return "❌ Opción no válida. Envíe *1* para comenzar."
	}
}
