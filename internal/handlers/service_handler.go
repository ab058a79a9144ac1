package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/httpresp"
	"github.com/BruksfildServices01/service-booking/internal/media"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/service-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	list   *ucCatalog.ListServices
	get    *ucCatalog.GetService
	create *ucCatalog.CreateService
	update *ucCatalog.UpdateService
	delete *ucCatalog.DeleteService
	image  *ucCatalog.UploadServiceImage
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
	del *ucCatalog.DeleteService,
	image *ucCatalog.UploadServiceImage,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
		image:  image,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Duration    *int     `json:"duration" binding:"required,gte=1"`
	Category    string   `json:"category" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Duration    *int     `json:"duration" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
}

// ======================================================
// READ
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) GetBySlug(c *gin.Context) {
	s, err := h.get.ExecuteBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

// ======================================================
// WRITE (admin)
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		ucCatalog.CreateServiceInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Duration:    *req.Duration,
			Category:    req.Category,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.update.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		id,
		domain.Patch{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Duration:    req.Duration,
			Category:    req.Category,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Service removed")
}

// UploadImage accepts a multipart "image" field.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Multipart field \"image\" is required")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Respond(c, ucCatalog.ErrImageTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "upload_read_failed", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "upload_read_failed", err.Error())
		return
	}

	s, err := h.image.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id, data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}
