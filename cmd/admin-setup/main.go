// Command admin-setup is an interactive bootstrap tool for a fresh server. It
// checks the server is reachable, registers (or logs in) the first admin
// account, and creates the first chat engine.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepCheckingServer step = iota
	stepEnteringName
	stepEnteringEmail
	stepEnteringPassword
	stepRegistering
	stepEnteringEngineName
	stepEnteringAPIKey
	stepCreatingEngine
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	name         string
	email        string
	password     string
	engineName   string
	apiKey       string
	token        string
	currentInput string
	message      string
	quitting     bool
}

type serverUpMsg struct{}
type registeredMsg struct{ token string }
type engineCreatedMsg struct{ engineName string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func serverURL() string {
	if url := os.Getenv("SERVER_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://localhost:8080"
}

func initialModel() model {
	return model{
		step:      stepCheckingServer,
		serverURL: serverURL(),
	}
}

func (m model) Init() tea.Cmd {
	return checkServer(m.serverURL)
}

func checkServer(baseURL string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(baseURL + "/health")
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", baseURL, err)}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server returned %d on health check", resp.StatusCode)}
		}
		return serverUpMsg{}
	}
}

// registerAdmin creates the first account. When the email is already taken it
// falls back to a login with the same credentials.
func registerAdmin(baseURL, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		resp, err := client.Post(baseURL+"/api/auth/register", "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			return errMsg{fmt.Errorf("register failed: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			return parseToken(resp)
		}

		// Account may already exist, try logging in instead.
		loginData, _ := json.Marshal(map[string]string{"email": email, "password": password})
		resp2, err := client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewBuffer(loginData))
		if err != nil {
			return errMsg{fmt.Errorf("login failed: %w", err)}
		}
		defer resp2.Body.Close()
		if resp2.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("could not register or log in (status %d)", resp2.StatusCode)}
		}
		return parseToken(resp2)
	}
}

func parseToken(resp *http.Response) tea.Msg {
	var result struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errMsg{fmt.Errorf("invalid response: %w", err)}
	}
	token := result.Token
	if token == "" {
		token = result.Data.Token
	}
	if token == "" {
		return errMsg{fmt.Errorf("no token in response")}
	}
	return registeredMsg{token: token}
}

func createEngine(baseURL, token, engineName, apiKey string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"engine_name": engineName,
			"api_key":     apiKey,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/api/chat-engines", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("create engine failed: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			var body struct {
				Message string `json:"message"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&body)
			if body.Message != "" {
				return errMsg{fmt.Errorf("create engine: %s", body.Message)}
			}
			return errMsg{fmt.Errorf("create engine returned %d", resp.StatusCode)}
		}
		return engineCreatedMsg{engineName: engineName}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringName || m.step == stepEnteringEmail || m.step == stepEnteringPassword ||
				m.step == stepEnteringEngineName || m.step == stepEnteringAPIKey {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringName:
				if m.currentInput != "" {
					m.name = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepRegistering
					m.message = "Creating account..."
					return m, registerAdmin(m.serverURL, m.name, m.email, m.password)
				}

			case stepEnteringEngineName:
				if m.currentInput != "" {
					m.engineName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAPIKey
				}

			case stepEnteringAPIKey:
				if m.currentInput != "" {
					m.apiKey = m.currentInput
					m.currentInput = ""
					m.step = stepCreatingEngine
					m.message = "Creating chat engine..."
					return m, createEngine(m.serverURL, m.token, m.engineName, m.apiKey)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case serverUpMsg:
		m.step = stepEnteringName
		m.message = successStyle.Render("✓ Server is up at " + m.serverURL)

	case registeredMsg:
		m.token = msg.token
		m.step = stepEnteringEngineName
		m.message = successStyle.Render("✓ Signed in as " + m.email)

	case engineCreatedMsg:
		m.step = stepComplete
		m.message = successStyle.Render("✓ Chat engine \"" + msg.engineName + "\" created")

	case errMsg:
		switch m.step {
		case stepCheckingServer:
			m.message = errorStyle.Render("✗ " + msg.err.Error())
			return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
				return checkServer(m.serverURL)()
			})
		case stepRegistering:
			m.message = errorStyle.Render("✗ " + msg.err.Error())
			m.step = stepEnteringName
		case stepCreatingEngine:
			m.message = errorStyle.Render("✗ " + msg.err.Error())
			m.step = stepEnteringEngineName
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("⚙ Admin Server Setup\n\n"))
	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepCheckingServer:
		s.WriteString("Checking server" + "...\n")
		s.WriteString("(Ctrl+C to quit)\n")

	case stepEnteringName:
		s.WriteString(promptStyle.Render("Admin name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Admin email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepRegistering, stepCreatingEngine:
		// message above already shows progress

	case stepEnteringEngineName:
		s.WriteString(promptStyle.Render("Chat engine name (e.g. \"OpenAI GPT-4o mini\"):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringAPIKey:
		s.WriteString(promptStyle.Render("Provider API key:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepComplete:
		s.WriteString("Setup finished. The server is ready to use.\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
