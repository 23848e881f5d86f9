package handlers

import "github.com/ankitkandwal-git/publication-Research-Journal/internal/usecases"

type HTTPHandlers struct {
	Certificates *usecases.CertificateUseCase
}

func NewHTTPHandlers(certificates *usecases.CertificateUseCase) *HTTPHandlers {
	return &HTTPHandlers{
		Certificates: certificates,
	}
}
