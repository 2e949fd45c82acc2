package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agriportal/entities"
	"agriportal/pkg/expense/controller"
	"agriportal/pkg/expense/export"
	"agriportal/pkg/expense/repository"
)

type ExpenseCtrl struct{ repo repository.ExpenseRepository }

func New(repo repository.ExpenseRepository) controller.ExpenseController {
	return &ExpenseCtrl{repo: repo}
}

func (h *ExpenseCtrl) List(c echo.Context) error {
	rows, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	total := 0
	for _, e := range rows {
		total += e.Amount
	}
	return c.JSON(http.StatusOK, map[string]any{"expenses": rows, "total": total})
}

type createReq struct {
	Date        string `json:"date" form:"date"`
	Item        string `json:"item" form:"item"`
	Amount      string `json:"amount" form:"amount"`
	Description string `json:"description" form:"description"`
}

func (h *ExpenseCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
	}
	if req.Date == "" || req.Item == "" || req.Amount == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date, item and amount are required"})
	}
	amount, err := strconv.Atoi(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount must be a number"})
	}

	e := &entities.Expense{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Item:        req.Item,
		Amount:      amount,
		Description: req.Description,
	}
	if err := h.repo.Create(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *ExpenseCtrl) Export(c echo.Context) error {
	rows, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := export.Workbook(rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
