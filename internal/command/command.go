// Package command implements the slash-command registry: trigger lookup
// and {placeholder} template expansion.
package command

import "strings"

// Registry resolves slash commands and renders their templates.
type Registry struct {
	commands []Command
}

// NewRegistry returns a registry over the built-in command set.
func NewRegistry() *Registry {
	return &Registry{commands: botCommands}
}

// IsCommand reports whether the message is a slash command rather than a
// free-form question.
func (r *Registry) IsCommand(message string) bool {
	return strings.HasPrefix(strings.TrimSpace(message), "/")
}

// IsCommandList reports whether the message is a bare slash, which asks for
// the list of available commands.
func (r *Registry) IsCommandList(message string) bool {
	return strings.TrimSpace(message) == "/"
}

// Find returns the command whose trigger matches the message,
// case-insensitively.
func (r *Registry) Find(message string) (Command, bool) {
	trigger := strings.ToLower(strings.TrimSpace(message))
	for _, cmd := range r.commands {
		if strings.ToLower(cmd.Trigger) == trigger {
			return cmd, true
		}
	}
	return Command{}, false
}

// ByID returns the command with the given id.
func (r *Registry) ByID(id string) (Command, bool) {
	for _, cmd := range r.commands {
		if cmd.ID == id {
			return cmd, true
		}
	}
	return Command{}, false
}

// List renders every command as "trigger - description", one per line.
func (r *Registry) List() string {
	lines := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		lines = append(lines, cmd.Trigger+" - "+cmd.Description)
	}
	return strings.Join(lines, "\n")
}

// FormatResponse substitutes each {key} placeholder in the template with
// its value. Placeholders without a value stay verbatim.
func (r *Registry) FormatResponse(template string, data map[string]string) string {
	response := template
	for key, value := range data {
		response = strings.ReplaceAll(response, "{"+key+"}", value)
	}
	return response
}

// FormatCommand renders a command's template. The help command gets the
// command list injected as {commandList}.
func (r *Registry) FormatCommand(cmd Command, data map[string]string) string {
	if cmd.ID == "help" {
		if data == nil {
			data = make(map[string]string)
		}
		data["commandList"] = r.List()
	}
	return r.FormatResponse(cmd.Template, data)
}
