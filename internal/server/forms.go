package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/gen/ent"
	car2datapb "github.com/dfmora/car2data/gen/proto/car2data/v1"
	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/extraction"
	"github.com/dfmora/car2data/internal/merge"
	"github.com/dfmora/car2data/internal/normalize"
	"github.com/dfmora/car2data/internal/render"
	"github.com/dfmora/car2data/internal/repository"
	"github.com/dfmora/car2data/internal/storage"
)

// formRoles names the person roles each form type binds.
var formRoles = map[string][]string{
	string(constants.FormContratoMandato):     {"mandante", "mandatario"},
	string(constants.FormContratoCompraventa): {"vendedor", "comprador"},
	string(constants.FormFormularioTramite):   {"propietario"},
}

type FormsService struct {
	car2datapb.UnimplementedFormsServiceServer
	docs     repository.DocumentRepository
	forms    repository.GeneratedFormRepository
	vehicles repository.VehicleRepository
	persons  repository.PersonRepository
	store    *storage.Store
	renderer *render.Renderer
	logger   *slog.Logger
}

func NewFormsService(
	docs repository.DocumentRepository,
	forms repository.GeneratedFormRepository,
	vehicles repository.VehicleRepository,
	persons repository.PersonRepository,
	store *storage.Store,
	renderer *render.Renderer,
	logger *slog.Logger,
) *FormsService {
	return &FormsService{
		docs:     docs,
		forms:    forms,
		vehicles: vehicles,
		persons:  persons,
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

// GenerateForm merges user-entered fields with the document's extraction
// and the persisted entities, resolves the canonical vehicle and person
// rows, renders the PDF and registers it. The file is written before the
// row is created so a registered form always points at a real file.
func (s *FormsService) GenerateForm(ctx context.Context, req *car2datapb.GenerateFormRequest) (*car2datapb.GenerateFormResponse, error) {
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	documentID, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	formType := strings.TrimSpace(req.GetFormType())
	if !constants.IsFormType(formType) {
		return nil, status.Errorf(codes.InvalidArgument, "form_type must be one of %s", strings.Join(constants.FormTypes, ", "))
	}

	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil || doc.OwnerID != ownerID {
		if err != nil && !ent.IsNotFound(err) {
			s.logger.Error("failed to load document", "document_id", documentID, "error", err)
			return nil, status.Error(codes.Internal, "failed to load document")
		}
		return nil, status.Error(codes.NotFound, "document not found")
	}

	form := merge.FieldMap(req.GetFormFields())
	extracted := extractedFields(s.logger, doc)
	roles := formRoles[formType]
	persisted := s.persistedSnapshot(ctx, roles, form, extracted)

	merged := merge.Merge(form, extracted, persisted, time.Now)

	// all identity keys are checked before any entity write happens
	if missing := missingKeys(merged, roles); len(missing) > 0 {
		return nil, status.Errorf(codes.InvalidArgument, "missing required fields: %s", strings.Join(missing, ", "))
	}

	if _, err := s.vehicles.Resolve(ctx, merged); err != nil {
		return nil, s.resolveError(err, "vehicle")
	}
	resolved := map[string]bool{}
	for _, role := range roles {
		numero := merged[role+".documento"]
		if resolved[numero] {
			// two roles held by the same person resolve once
			continue
		}
		if _, err := s.persons.ResolveRole(ctx, role, merged); err != nil {
			return nil, s.resolveError(err, role)
		}
		resolved[numero] = true
	}

	outPath := s.store.GeneratedFormPath(formType, documentID)
	if !s.renderer.Render(formType, merged, outPath) {
		return nil, status.Error(codes.Internal, "failed to render form")
	}

	gf, err := s.forms.Create(ctx, &repository.CreateGeneratedFormRequest{
		OwnerID:    ownerID,
		DocumentID: documentID,
		FormType:   formType,
		OutputPath: outPath,
	})
	if err != nil {
		// the rendered file must not outlive a failed registration
		_ = s.store.RemoveFile(outPath)
		return nil, status.Error(codes.Internal, "failed to register form")
	}

	return &car2datapb.GenerateFormResponse{Form: toGeneratedFormPB(gf)}, nil
}

func (s *FormsService) ListGeneratedForms(ctx context.Context, req *car2datapb.ListGeneratedFormsRequest) (*car2datapb.ListGeneratedFormsResponse, error) {
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}

	forms, err := s.forms.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list generated forms", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "failed to list forms")
	}

	out := make([]*car2datapb.GeneratedForm, len(forms))
	for i, gf := range forms {
		out[i] = toGeneratedFormPB(gf)
	}
	return &car2datapb.ListGeneratedFormsResponse{Forms: out}, nil
}

func (s *FormsService) DeleteGeneratedForm(ctx context.Context, req *car2datapb.DeleteGeneratedFormRequest) (*car2datapb.DeleteGeneratedFormResponse, error) {
	formID, err := parseUUID(req.GetFormId(), "form_id")
	if err != nil {
		return nil, err
	}

	gf, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "form not found")
		}
		s.logger.Error("failed to load generated form", "form_id", formID, "error", err)
		return nil, status.Error(codes.Internal, "failed to load form")
	}

	if err := s.forms.Delete(ctx, formID); err != nil {
		return nil, status.Error(codes.Internal, "failed to delete form")
	}
	_ = s.store.RemoveFile(gf.OutputPath)

	return &car2datapb.DeleteGeneratedFormResponse{}, nil
}

// extractedFields decodes the document's stored extraction; an
// unprocessed document simply contributes nothing to the merge.
func extractedFields(logger *slog.Logger, doc *entity.Document) merge.FieldMap {
	if len(doc.ExtractedJSON) == 0 {
		return merge.FieldMap{}
	}
	var canonical extraction.CanonicalExtraction
	if err := json.Unmarshal(doc.ExtractedJSON, &canonical); err != nil {
		logger.Warn("stored extraction is not decodable", "document_id", doc.ID, "error", err)
		return merge.FieldMap{}
	}
	return merge.FromExtraction(canonical)
}

// persistedSnapshot loads whatever the database already knows about the
// vehicle and the involved persons, keyed off the identity fields the
// form or the extraction provide.
func (s *FormsService) persistedSnapshot(ctx context.Context, roles []string, form, extracted merge.FieldMap) merge.FieldMap {
	persisted := merge.FieldMap{}

	placa := normalize.Fold(form["vehiculo.placa"])
	if placa == "" {
		placa = merge.Lookup(extracted, "vehiculo.placa")
	}
	if placa != "" {
		if v, err := s.vehicles.GetByPlaca(ctx, placa); err == nil {
			addVehicleFields(persisted, v)
		}
	}

	for _, role := range roles {
		numero := normalize.Fold(form[role+".documento"])
		if numero == "" {
			numero = merge.Lookup(extracted, role+".documento")
		}
		if numero == "" {
			continue
		}
		if p, err := s.persons.GetByDocumento(ctx, numero); err == nil {
			addPersonFields(persisted, role, p)
		}
	}

	return persisted
}

func addVehicleFields(m merge.FieldMap, v *entity.Vehicle) {
	m["vehiculo.placa"] = v.Placa
	m["vehiculo.marca"] = v.Marca
	m["vehiculo.linea"] = v.Linea
	m["vehiculo.modelo"] = v.Modelo
	m["vehiculo.color"] = v.Color
	m["vehiculo.numero_motor"] = v.NumeroMotor
	m["vehiculo.numero_chasis"] = v.NumeroChasis
	m["vehiculo.numero_serie"] = v.NumeroSerie
	m["vehiculo.vin"] = v.VIN
	m["vehiculo.cilindraje"] = v.Cilindraje
	m["vehiculo.potencia_hp"] = v.PotenciaHP
	m["vehiculo.capacidad"] = v.Capacidad
	m["vehiculo.carroceria"] = v.Carroceria
	m["vehiculo.clase_vehiculo"] = v.ClaseVehiculo
	m["vehiculo.combustible"] = v.Combustible
	m["vehiculo.servicio"] = v.Servicio
	m["vehiculo.puertas"] = v.Puertas
}

func addPersonFields(m merge.FieldMap, role string, p *entity.Person) {
	m[role+".documento"] = p.NumeroDocumento
	m[role+".tipo_documento"] = p.TipoDocumento
	m[role+".nombre"] = p.Nombre
	m[role+".direccion"] = p.Direccion
	m[role+".ciudad"] = p.Ciudad
	m[role+".telefono"] = p.Telefono
}

func missingKeys(merged merge.FieldMap, roles []string) []string {
	var missing []string
	if merged["vehiculo.placa"] == "" {
		missing = append(missing, "vehiculo.placa")
	}
	for _, role := range roles {
		if merged[role+".documento"] == "" {
			missing = append(missing, role+".documento")
		}
	}
	return missing
}

func (s *FormsService) resolveError(err error, subject string) error {
	if errors.Is(err, common.ErrValidation) {
		return status.Errorf(codes.InvalidArgument, "cannot resolve %s: %v", subject, err)
	}
	s.logger.Error("entity resolution failed", "subject", subject, "error", err)
	return status.Error(codes.Internal, "failed to resolve entities")
}

func toGeneratedFormPB(gf *entity.GeneratedForm) *car2datapb.GeneratedForm {
	return &car2datapb.GeneratedForm{
		Id:         gf.ID.String(),
		OwnerId:    gf.OwnerID.String(),
		DocumentId: gf.DocumentID.String(),
		FormType:   gf.FormType,
		OutputPath: gf.OutputPath,
		CreatedAt:  gf.CreatedAt.UTC().Format(time.RFC3339),
	}
}
