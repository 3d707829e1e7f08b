package packages

import (
	"context"
	"net/http"

	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/billing"
	"github.com/mkani/billing/pkg/catalog"
	"github.com/mkani/billing/pkg/handlers/render"
	"github.com/mkani/billing/pkg/mapping"
	"github.com/mkani/billing/pkg/models"
)

// PackageService creates packages on behalf of a principal.
type PackageService interface {
	CreatePackage(ctx context.Context, p *authz.Principal, in billing.CreatePackageInput) (*models.Package, error)
}

// PackagesHandler holds the dependencies for package-related handlers.
type PackagesHandler struct {
	Service PackageService
}

func NewPackagesHandler(svc PackageService) *PackagesHandler {
	return &PackagesHandler{Service: svc}
}

// CreatePackage creates a package and bills it right away.
func (h *PackagesHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	p, ok := render.Principal(w, r)
	if !ok {
		return
	}

	var body api.CreatePackageJSONRequestBody
	if err := render.Decode(r, &body); err != nil {
		render.Error(w, err)
		return
	}
	in, err := mapping.ToDomainPackage(&body)
	if err != nil {
		render.Error(w, err)
		return
	}

	pkg, err := h.Service.CreatePackage(r.Context(), p, in)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusCreated, mapping.ToApiPackage(pkg))
}

func (h *PackagesHandler) ListPackageTypes(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, mapping.ToApiPackageTypes(catalog.Types()))
}
