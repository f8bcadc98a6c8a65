package domain

import "time"

// AlertAck é a confirmação local, única, de um alerta enviado em modo fire-and-forget
type AlertAck struct {
	ID       string    `json:"id"`
	Target   string    `json:"target"`
	Channel  string    `json:"channel"`
	QueuedAt time.Time `json:"queued_at"`
}

// UploadFile é um arquivo CSV recebido para envio ao backend
type UploadFile struct {
	Name    string
	Content []byte
}

type UploadReceipt struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	Endpoint   string    `json:"endpoint"`
	UploadedAt time.Time `json:"uploaded_at"`
	Message    string    `json:"message"`
}

type PredictionResult struct {
	Predictions []any `json:"predictions"`
}
