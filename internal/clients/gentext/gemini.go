// Package gentext drafts partner transfer emails through the Google
// generative-language API. Drafts are for human review before sending;
// any failure yields a readable placeholder string, never an error page.
package gentext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiModel = "gemini-2.5-flash"

// EmailRequest carries everything the prompt needs.
type EmailRequest struct {
	PartnerName    string
	PassengerCount int
	TripDetails    string
	PassengerNames []string
}

// Drafter is the generation boundary; handlers depend on this so tests can
// substitute fakes.
type Drafter interface {
	DraftPartnerEmail(ctx context.Context, req EmailRequest) string
}

// GeminiClient calls the generateContent REST endpoint directly.
type GeminiClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewGeminiClient(baseURL, apiKey string) *GeminiClient {
	return &GeminiClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type promptPart struct {
	Text string `json:"text"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const (
	msgMissingKey  = "Erro: Chave de API ausente."
	msgDraftFailed = "Erro ao gerar o rascunho. Por favor, tente novamente mais tarde."
	msgEmptyDraft  = "Não foi possível gerar o rascunho do e-mail."
)

func (c *GeminiClient) DraftPartnerEmail(ctx context.Context, req EmailRequest) string {
	if strings.TrimSpace(c.APIKey) == "" {
		return msgMissingKey
	}

	body := generateRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: buildPrompt(req)}}}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return msgDraftFailed
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, geminiModel, c.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return msgDraftFailed
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return msgDraftFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return msgDraftFailed
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return msgDraftFailed
	}
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return msgEmptyDraft
}

func buildPrompt(req EmailRequest) string {
	return fmt.Sprintf(`Você é um assistente de uma agência de turismo receptivo.
Escreva um e-mail profissional, educado e objetivo para uma agência parceira chamada "%s".

Solicitação: Temos uma situação de overbooking e precisamos transferir %d passageiros para o veículo deles, se disponível.

Detalhes da Viagem: %s
Passageiros: %s

O tom deve ser colaborativo e um pouco urgente, mas muito profissional.
Inclua espaços reservados para [Data] e [Seu Nome] se não estiver evidente.
Escreva o e-mail em Português do Brasil.
Retorne apenas o corpo do texto do e-mail.`,
		req.PartnerName, req.PassengerCount, req.TripDetails,
		strings.Join(req.PassengerNames, ", "))
}
