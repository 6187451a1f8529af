package usecase

import "time"

// Setters de reloj y generador de IDs para los tests del paquete usecase_test.

func (uc *CatalogUseCase) SetNow(now func() time.Time) { uc.now = now }
func (uc *CatalogUseCase) SetNewID(newID func() string) { uc.newID = newID }

func (uc *ImportUseCase) SetNewID(newID func() string) { uc.newID = newID }

func (uc *QuoteUseCase) SetNow(now func() time.Time) { uc.now = now }
func (uc *QuoteUseCase) SetNewID(newID func() string) { uc.newID = newID }

func (uc *ExportUseCase) SetNow(now func() time.Time) { uc.now = now }
