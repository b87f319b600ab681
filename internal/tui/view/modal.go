package view

import (
	"strings"

	"svcctl/internal/tui/components"
	"svcctl/internal/tui/design"
	"svcctl/internal/tui/model"
)

func renderModal(m *model.Model, list *model.ServiceList) string {
	t := m.T.T

	var title, body string
	switch md := list.Modal.(type) {
	case model.DeleteConfirm:
		title = t("overview.delete")
		body = t("overview.popup.delete")
	case model.StateChange:
		title = t(md.Change.ConfirmLabelKey())
		body = t(md.Change.QuestionKey())
	case model.ReadinessCheck:
		title = t("overview.popup.activateService")
		if md.Loading {
			body = t("overview.popup.checking") + "…"
		} else {
			body = t(md.Outcome.MessageKey())
			if md.Outcome == model.ReadinessNotConnected {
				body = design.TextErrorStyle.Render(body)
			}
			if md.Trigger != nil && md.Trigger.Intent != "" {
				body += "\n" + SafeIcon(IconLink) + md.Trigger.Intent
			}
		}
	case model.IntentConnect:
		return renderIntentDialog(m, md.Dialog)
	default:
		return ""
	}

	if name := targetName(list); name != "" {
		body = design.TextSecondaryStyle.Render(name) + "\n\n" + body
	}

	return components.NewModal(title).
		WithBody(body).
		WithButtons(modalButtons(m, list)...).
		WithWidth(design.ModalMinWidth + 8).
		Render()
}

func modalButtons(m *model.Model, list *model.ServiceList) []components.Button {
	buttons := model.Buttons(list.Modal)
	out := make([]components.Button, 0, len(buttons))
	for i, b := range buttons {
		out = append(out, components.Button{
			Label:    m.T.T(b.LabelKey),
			Focused:  i == list.ButtonFocus,
			Disabled: !b.Enabled,
			Danger:   b.Danger,
		})
	}
	return out
}

func targetName(list *model.ServiceList) string {
	for _, svc := range list.Services {
		if svc.ID == list.Target {
			return strings.TrimSpace(svc.Name)
		}
	}
	return ""
}
