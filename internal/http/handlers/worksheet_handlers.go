package handlers

import (
	"net/http"

	"github.com/nupl21/dieta-app/internal/models"
	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/nupl21/dieta-app/internal/sheet"
	"go.uber.org/zap"
)

// GetProductsHandler godoc
// @Summary List the product catalog
// @Description Returns the normalized catalog: malformed cells are replaced by their defaults
// @Tags products
// @Produce json
// @Success 200 {object} ProductsResult
// @Failure 502 {string} string "Store failure"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := sheetRepo.Read(r.Context(), sheet.Products)
	if err != nil {
		storeError(w, err, "could not fetch products")
		return
	}
	products := planner.NormalizeProducts(rows)
	respond(w, http.StatusOK, ProductsResult{Data: products, Meta: Meta{TotalCount: len(products)}})
}

// PutProductsHandler godoc
// @Summary Replace the product catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param products body []ProductRequest true "Full catalog"
// @Success 200 {object} ProductsResult
// @Failure 400 {array} ValidationError
// @Failure 502 {string} string "Store failure"
// @Router /products [put]
func PutProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req []ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateProducts(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	products := make([]models.Product, len(req))
	for i, p := range req {
		products[i] = models.Product{
			Name:     p.Name,
			Price:    p.Price,
			Yield:    p.Yield,
			Unit:     p.Unit,
			Tier:     models.Tier(p.Tier),
			Location: p.Location,
			Category: p.Category,
		}
	}
	products = planner.NormalizeCatalog(products)

	if err := sheetRepo.Update(r.Context(), sheet.Products, planner.ProductRecords(products)); err != nil {
		storeError(w, err, "could not save products")
		return
	}
	logger.Info("catalog saved", zap.Int("rows", len(products)))
	respond(w, http.StatusOK, ProductsResult{Data: products, Meta: Meta{TotalCount: len(products)}})
}

// GetMenuHandler godoc
// @Summary List the weekly menu
// @Tags menu
// @Produce json
// @Success 200 {object} MenuResult
// @Failure 502 {string} string "Store failure"
// @Router /menu [get]
func GetMenuHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := sheetRepo.Read(r.Context(), sheet.Menu)
	if err != nil {
		storeError(w, err, "could not fetch menu")
		return
	}
	menu := planner.NormalizeMenu(rows)
	respond(w, http.StatusOK, MenuResult{Data: menu, Meta: Meta{TotalCount: len(menu)}})
}

// PutMenuHandler godoc
// @Summary Replace the weekly menu
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu body []MenuEntryRequest true "Full menu"
// @Success 200 {object} MenuResult
// @Failure 400 {array} ValidationError
// @Failure 502 {string} string "Store failure"
// @Router /menu [put]
func PutMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req []MenuEntryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateMenu(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	menu := make([]models.MenuEntry, len(req))
	for i, e := range req {
		menu[i] = models.MenuEntry{
			Product:  e.Product,
			Weekday:  e.Weekday,
			Slot:     planner.NormalizeSlot(e.Slot),
			Quantity: e.Quantity,
		}
	}
	rows := planner.MenuRecords(menu)

	if err := sheetRepo.Update(r.Context(), sheet.Menu, rows); err != nil {
		storeError(w, err, "could not save menu")
		return
	}
	logger.Info("menu saved", zap.Int("rows", len(rows)))
	menu = planner.NormalizeMenu(rows)
	respond(w, http.StatusOK, MenuResult{Data: menu, Meta: Meta{TotalCount: len(menu)}})
}

// GetListHandler godoc
// @Summary List the flat weekly shopping list
// @Tags list
// @Produce json
// @Success 200 {object} ListResult
// @Failure 502 {string} string "Store failure"
// @Router /list [get]
func GetListHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := sheetRepo.Read(r.Context(), sheet.List)
	if err != nil {
		storeError(w, err, "could not fetch list")
		return
	}
	items := planner.NormalizeList(rows)
	respond(w, http.StatusOK, ListResult{Data: items, Meta: Meta{TotalCount: len(items)}})
}

// PutListHandler godoc
// @Summary Replace the flat weekly shopping list
// @Tags list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param list body []ListItemRequest true "Full list"
// @Success 200 {object} ListResult
// @Failure 400 {array} ValidationError
// @Failure 502 {string} string "Store failure"
// @Router /list [put]
func PutListHandler(w http.ResponseWriter, r *http.Request) {
	var req []ListItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateList(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	items := make([]models.ListItem, len(req))
	for i, it := range req {
		active := true
		if it.Active != nil {
			active = *it.Active
		}
		items[i] = models.ListItem{
			Product:        it.Product,
			Category:       it.Category,
			WeeklyQuantity: it.WeeklyQuantity,
			Active:         active,
			Tier:           planner.NormalizeTier(it.Tier),
			PackagePrice:   it.PackagePrice,
			PackageYield:   it.PackageYield,
			Unit:           it.Unit,
		}
	}
	rows := planner.ListRecords(items)

	if err := sheetRepo.Update(r.Context(), sheet.List, rows); err != nil {
		storeError(w, err, "could not save list")
		return
	}
	logger.Info("list saved", zap.Int("rows", len(rows)))
	items = planner.NormalizeList(rows)
	respond(w, http.StatusOK, ListResult{Data: items, Meta: Meta{TotalCount: len(items)}})
}

// GetRecipesHandler godoc
// @Summary List the recipes
// @Tags recipes
// @Produce json
// @Success 200 {object} RecipesResult
// @Failure 502 {string} string "Store failure"
// @Router /recipes [get]
func GetRecipesHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := sheetRepo.Read(r.Context(), sheet.Recipes)
	if err != nil {
		storeError(w, err, "could not fetch recipes")
		return
	}
	recipes := planner.NormalizeRecipes(rows)
	respond(w, http.StatusOK, RecipesResult{Data: recipes, Meta: Meta{TotalCount: len(recipes)}})
}

// PutRecipesHandler godoc
// @Summary Replace the recipes
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipes body []RecipeRequest true "Full recipe list"
// @Success 200 {object} RecipesResult
// @Failure 400 {array} ValidationError
// @Failure 502 {string} string "Store failure"
// @Router /recipes [put]
func PutRecipesHandler(w http.ResponseWriter, r *http.Request) {
	var req []RecipeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateRecipes(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	recipes := make([]models.Recipe, len(req))
	for i, rc := range req {
		recipes[i] = models.Recipe{
			Weekday:      rc.Weekday,
			Slot:         planner.NormalizeSlot(rc.Slot),
			Instructions: rc.Instructions,
		}
	}
	rows := planner.RecipeRecords(recipes)

	if err := sheetRepo.Update(r.Context(), sheet.Recipes, rows); err != nil {
		storeError(w, err, "could not save recipes")
		return
	}
	respond(w, http.StatusOK, RecipesResult{Data: recipes, Meta: Meta{TotalCount: len(recipes)}})
}
