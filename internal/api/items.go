package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/service"
)

const maxUploadMemory = 32 << 20

type ItemsListResponse struct {
	Items []entity.LostItem `json:"items"`
	Total int               `json:"total"`
	Page  uint64            `json:"page"`
	Limit uint64            `json:"limit"`
}

type DeliveredListResponse struct {
	Items []entity.DeliveredItem `json:"items"`
	Total int                    `json:"total"`
	Page  uint64                 `json:"page"`
	Limit uint64                 `json:"limit"`
}

// ReportItem godoc
// @Summary      Report a found item
// @Description  Multipart form: name, description, location, category, flightNumber, dateFound (RFC3339), supervisor (uuid), images (files).
// @Tags         items
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Success      201 {object} entity.LostItem
// @Failure      400 {object} ResponseError "Invalid item details"
// @Failure      403 {object} ResponseError "Insufficient rights"
// @Router       /items [post]
func (h *Handler) ReportItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Expected multipart form data")
		return
	}

	input := service.ReportItemInput{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		Location:     r.FormValue("location"),
		Category:     r.FormValue("category"),
		FlightNumber: r.FormValue("flightNumber"),
	}

	if raw := r.FormValue("dateFound"); raw != "" {
		input.DateFound, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid dateFound, expected RFC3339")
			return
		}
	}

	if raw := r.FormValue("supervisor"); raw != "" {
		input.Supervisor, err = uuid.FromString(raw)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid supervisor id")
			return
		}
	}

	input.Images, err = readUploads(r.MultipartForm.File["images"])
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Failed to read uploaded images")
		return
	}

	item, err := h.s.ReportItem(ctx, input)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, item)
}

// Items godoc
// @Summary      List on-hand items
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "on-hand or in-process"
// @Param        flightNumber query string false "Flight number"
// @Param        category query string false "Category"
// @Param        foundBy query string false "Reporter user id"
// @Param        page query int false "Page, 1-based"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "date_found, name, category, status, flight_number"
// @Param        orderBy query string false "asc or desc"
// @Param        expand query string false "Comma-separated: foundBy, supervisor"
// @Success      200 {object} ItemsListResponse
// @Router       /items [get]
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := itemsFilterFromQuery(r)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	items, total, err := h.s.LostItems(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ItemsListResponse{
		Items: items,
		Total: total,
		Page:  max(filter.Page, 1),
		Limit: filter.Limit,
	})
}

// ItemByID godoc
// @Summary      On-hand item details
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Item id"
// @Param        expand query string false "Comma-separated: foundBy, supervisor"
// @Success      200 {object} entity.LostItem
// @Failure      404 {object} ResponseError "No such item"
// @Router       /items/{id} [get]
func (h *Handler) ItemByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	item, err := h.s.LostItemByID(ctx, id, expandFromQuery(r))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

type EditItemRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	Category     *string    `json:"category"`
	FlightNumber *string    `json:"flightNumber"`
	Status       *string    `json:"status"`
	DateFound    *time.Time `json:"dateFound"`
	Supervisor   *uuid.UUID `json:"supervisor"`
}

// EditItem godoc
// @Summary      Edit an on-hand item
// @Description  Absent fields keep their stored value. Status accepts on-hand and in-process; delivery goes through its own endpoint.
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Item id"
// @Param        request body EditItemRequest true "Changed fields"
// @Success      200 {object} entity.LostItem
// @Failure      403 {object} ResponseError "Not the reporter"
// @Router       /items/{id} [patch]
func (h *Handler) EditItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	var req EditItemRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	item, err := h.s.EditItem(ctx, id, service.EditItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Category:     req.Category,
		FlightNumber: req.FlightNumber,
		Status:       req.Status,
		DateFound:    req.DateFound,
		Supervisor:   req.Supervisor,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// AddItemImages godoc
// @Summary      Attach photographs to an item
// @Tags         items
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Item id"
// @Success      200 {object} entity.LostItem
// @Router       /items/{id}/images [post]
func (h *Handler) AddItemImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	err = r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Expected multipart form data")
		return
	}

	uploads, err := readUploads(r.MultipartForm.File["images"])
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Failed to read uploaded images")
		return
	}

	if len(uploads) == 0 {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "No images in form")
		return
	}

	item, err := h.s.AddItemImages(ctx, id, uploads)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// RemoveItemImage godoc
// @Summary      Detach a photograph from an item
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Item id"
// @Param        publicId query string true "Hosted image public id"
// @Success      200 {object} entity.LostItem
// @Failure      404 {object} ResponseError "No such image on the item"
// @Router       /items/{id}/images [delete]
func (h *Handler) RemoveItemImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	publicID := r.URL.Query().Get("publicId")
	if publicID == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "publicId query parameter is required")
		return
	}

	item, err := h.s.RemoveItemImage(ctx, id, publicID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// DeliverItem godoc
// @Summary      Deliver an item to its owner
// @Description  Moves the record to the delivered collection in a single transaction. Multipart form: customerName, customerEmail, customerPhone, customerIdentification, signature, notes, deliveryImages (files). Customer name, email, phone, identification and signature are mandatory.
// @Tags         items
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Item id"
// @Success      200 {object} entity.DeliveredItem
// @Failure      400 {object} ResponseError "Missing customer details"
// @Failure      404 {object} ResponseError "No such item"
// @Router       /items/{id}/deliver [post]
func (h *Handler) DeliverItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	err = r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Expected multipart form data")
		return
	}

	input := service.DeliverItemInput{
		Customer: entity.Customer{
			Name:           r.FormValue("customerName"),
			Email:          r.FormValue("customerEmail"),
			Phone:          r.FormValue("customerPhone"),
			Identification: r.FormValue("customerIdentification"),
		},
		Signature: r.FormValue("signature"),
		Notes:     r.FormValue("notes"),
	}

	input.DeliveryImages, err = readUploads(r.MultipartForm.File["deliveryImages"])
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Failed to read uploaded images")
		return
	}

	delivered, err := h.s.DeliverItem(ctx, id, input)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, delivered)
}

// DeleteItem godoc
// @Summary      Delete an on-hand item
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Item id"
// @Success      200 {object} MessageResponse
// @Router       /items/{id} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	err = h.s.DeleteLostItem(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Item deleted"})
}

// DeliveredItems godoc
// @Summary      List delivered items
// @Description  Archived records are excluded unless includeArchived=true.
// @Tags         delivered
// @Security     BearerAuth
// @Produce      json
// @Param        flightNumber query string false "Flight number"
// @Param        category query string false "Category"
// @Param        includeArchived query bool false "Include archived records"
// @Param        page query int false "Page, 1-based"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "delivered_at, date_found, name, category, flight_number"
// @Param        orderBy query string false "asc or desc"
// @Param        expand query string false "Comma-separated: foundBy, deliveredBy"
// @Success      200 {object} DeliveredListResponse
// @Router       /delivered [get]
func (h *Handler) DeliveredItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := itemsFilterFromQuery(r)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	items, total, err := h.s.DeliveredItems(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, DeliveredListResponse{
		Items: items,
		Total: total,
		Page:  max(filter.Page, 1),
		Limit: filter.Limit,
	})
}

// DeliveredItemByID godoc
// @Summary      Delivered item details
// @Tags         delivered
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Delivered item id"
// @Param        expand query string false "Comma-separated: foundBy, deliveredBy"
// @Success      200 {object} entity.DeliveredItem
// @Failure      404 {object} ResponseError "No such record"
// @Router       /delivered/{id} [get]
func (h *Handler) DeliveredItemByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	item, err := h.s.DeliveredItemByID(ctx, id, expandFromQuery(r))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// RevertItem godoc
// @Summary      Undo a delivery
// @Description  Admin only. The item returns to the on-hand phase under a fresh id, keeping its original found date.
// @Tags         delivered
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Delivered item id"
// @Success      200 {object} entity.LostItem
// @Failure      403 {object} ResponseError "Admins only"
// @Router       /delivered/{id}/revert [post]
func (h *Handler) RevertItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	item, err := h.s.RevertItem(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

type ArchiveRequest struct {
	Archived bool `json:"archived"`
}

// ArchiveItem godoc
// @Summary      Archive or unarchive a delivered item
// @Tags         delivered
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Delivered item id"
// @Param        request body ArchiveRequest true "Archive flag"
// @Success      200 {object} MessageResponse
// @Router       /delivered/{id}/archive [patch]
func (h *Handler) ArchiveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	var req ArchiveRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	err = h.s.SetItemArchived(ctx, id, req.Archived)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Archive flag updated"})
}

// DeleteDeliveredItem godoc
// @Summary      Delete a delivered item record
// @Tags         delivered
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Delivered item id"
// @Success      200 {object} MessageResponse
// @Router       /delivered/{id} [delete]
func (h *Handler) DeleteDeliveredItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	err = h.s.DeleteDeliveredItem(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Record deleted"})
}

func readUploads(headers []*multipart.FileHeader) ([]service.ImageUpload, error) {
	uploads := make([]service.ImageUpload, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", header.Filename, err)
		}

		data, err := io.ReadAll(file)
		file.Close()

		if err != nil {
			return nil, fmt.Errorf("read %q: %w", header.Filename, err)
		}

		uploads = append(uploads, service.ImageUpload{
			Data:         data,
			MimeType:     header.Header.Get("Content-Type"),
			OriginalName: header.Filename,
		})
	}

	return uploads, nil
}

func itemsFilterFromQuery(r *http.Request) (entity.ItemsFilter, error) {
	q := r.URL.Query()

	var filter entity.ItemsFilter

	if raw := q.Get("status"); raw != "" {
		status, err := entity.ParseItemStatus(raw)
		if err != nil {
			return entity.ItemsFilter{}, err
		}

		filter.Status = status
	}

	filter.FlightNumber = q.Get("flightNumber")
	filter.Category = q.Get("category")

	if raw := q.Get("foundBy"); raw != "" {
		id, err := uuid.FromString(raw)
		if err != nil {
			return entity.ItemsFilter{}, fmt.Errorf("%w: invalid foundBy id", entity.ErrIncorrectRequestBody)
		}

		filter.FoundBy = id
	}

	filter.IncludeArchived = q.Get("includeArchived") == "true"

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || page == 0 {
			return entity.ItemsFilter{}, fmt.Errorf("%w: invalid page", entity.ErrIncorrectRequestBody)
		}

		filter.Page = page
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return entity.ItemsFilter{}, fmt.Errorf("%w: invalid limit", entity.ErrIncorrectRequestBody)
		}

		filter.Limit = limit
	}

	filter.SortBy = entity.ItemsSortBy(q.Get("sortBy"))
	filter.OrderBy = entity.OrderBy(q.Get("orderBy"))
	filter.Expand = expandFromQuery(r)

	return filter, nil
}

func expandFromQuery(r *http.Request) entity.Expand {
	raw := r.URL.Query().Get("expand")
	if raw == "" {
		return nil
	}

	var expand entity.Expand

	for _, relation := range strings.Split(raw, ",") {
		if relation = strings.TrimSpace(relation); relation != "" {
			expand = append(expand, relation)
		}
	}

	return expand
}
