package dto

import "time"

// DatasetStatusDTO respuesta de GET /api/dataset/status y POST /api/dataset/reload.
type DatasetStatusDTO struct {
	Loaded      bool      `json:"loaded"`
	Source      string    `json:"source"`       // URL o ruta del origen
	RecordCount int       `json:"record_count"` // registros tras normalización
	LoadedAt    time.Time `json:"loaded_at,omitempty"`
	LastError   string    `json:"last_error,omitempty"` // del último intento fallido
}
