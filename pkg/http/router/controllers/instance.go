package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/cvrp/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type instanceAPI struct {
	instanceService InstanceService
	log             *zap.Logger
}

func New(instanceService InstanceService, log *zap.Logger) *instanceAPI {
	return &instanceAPI{
		instanceService: instanceService,
		log:             log,
	}
}

func (api *instanceAPI) Routes(group *helper.RouteGroup) {
	group.GET("/instances/:name", api.getInstance)
	group.GET("/instances/:name/costs", api.getCostMatrix)
	group.GET("/instances/:name/cost", api.getCost)
}

// validateRequest returns nil or a single error listing every failed field.
func validateRequest(request any) error {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}

func (api *instanceAPI) getInstance(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := instanceRequest{Name: p.ByName("name")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	inst, err := api.instanceService.GetInstance(request.Name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewInstanceResponse(inst)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *instanceAPI) getCostMatrix(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := instanceRequest{Name: p.ByName("name")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	inst, err := api.instanceService.GetInstance(request.Name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCostMatrixResponse(inst)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *instanceAPI) getCost(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request costRequest
		err     error
	)

	query := r.URL.Query()

	request.Name = p.ByName("name")
	request.From, err = strconv.Atoi(query.Get("from"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("from is required and must be a valid int"))
		return
	}
	request.To, err = strconv.Atoi(query.Get("to"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("to is required and must be a valid int"))
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	cost, err := api.instanceService.Cost(request.Name, request.From, request.To)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCostResponse(request.From, request.To, cost)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
