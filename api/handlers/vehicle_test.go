package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelease/travel-ease-api/api/handlers"
	"github.com/travelease/travel-ease-api/databases"
	"github.com/travelease/travel-ease-api/databases/mocks"
	"github.com/travelease/travel-ease-api/models"
)

func TestVehicle_VehicleHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/vehicles?email=jane@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	vID, _ := primitive.ObjectIDFromHex("5fc51f58c72ff10004dca382")
	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Vehicle)
		*arg = []models.Vehicle{{ID: vID, VehicleName: "Tesla Model 3", UserEmail: "jane@example.com"}}
	})
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "Tesla Model 3") {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestVehicle_VehicleHandlerEmptyResult(t *testing.T) {
	req, err := http.NewRequest("GET", "/vehicles", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if rr.Body.String() != "[]" {
		t.Errorf("handler returned unexpected body: got %v want []", rr.Body.String())
	}
}

func TestVehicle_VehicleHandlerFindError(t *testing.T) {
	req, err := http.NewRequest("GET", "/vehicles", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusInternalServerError)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get vehicles", Error: "mocked-error"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), string(b))
	}
}

func TestVehicle_LatestVehiclesHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/latest-vehicles", nil)
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Vehicle)
		*arg = []models.Vehicle{{VehicleName: "Honda CBR"}, {VehicleName: "Ford Transit"}}
	})
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper).Run(func(args mock.Arguments) {
		// the query must cap at 6 and sort newest first
		opts := args.Get(2).(*options.FindOptions)
		if opts.Limit == nil || *opts.Limit != 6 {
			t.Errorf("expected a find limit of 6, got %v", opts.Limit)
		}
		sort, ok := opts.Sort.(bson.D)
		if !ok || len(sort) != 1 || sort[0].Key != "createdAt" || sort[0].Value != -1 {
			t.Errorf("expected createdAt descending sort, got %v", opts.Sort)
		}
	})
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.LatestVehiclesHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "Honda CBR") {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestVehicle_VehicleByIDHandlerBadID(t *testing.T) {
	req, err := http.NewRequest("GET", "/vehicles/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"vehicle_id": "1234"})

	v := handlers.Vehicle{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VehicleByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusInternalServerError)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get objectID from Hex", Error: "the provided hex string is not a valid ObjectID"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), string(b))
	}
}

func TestVehicle_VehicleByIDHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/vehicles/5fc51f58c72ff10004dca999", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"vehicle_id": "5fc51f58c72ff10004dca999"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VehicleByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "vehicle not found", Error: "mongo: no documents in result"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), string(b))
	}
}

func TestVehicle_VehicleByIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/vehicles/5fc51f58c72ff10004dca382", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"vehicle_id": "5fc51f58c72ff10004dca382"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	vID, _ := primitive.ObjectIDFromHex("5fc51f58c72ff10004dca382")
	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Vehicle)
		(*arg).ID = vID
		(*arg).VehicleName = "Tesla Model 3"
	})
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VehicleByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "5fc51f58c72ff10004dca382") {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestVehicle_CreateVehicleHandlerMissingFields(t *testing.T) {
	req, err := http.NewRequest("POST", "/vehicles", strings.NewReader(`{"owner":"Jane Doe"}`))
	if err != nil {
		t.Fatal(err)
	}

	v := handlers.Vehicle{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.CreateVehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "vehicleName and userEmail are required", Error: "missing required fields"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), string(b))
	}
}

func TestVehicle_CreateVehicleHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/vehicles", strings.NewReader(`{"vehicleName":"Tesla Model 3","userEmail":"jane@example.com","pricePerDay":99.5}`))
	if err != nil {
		t.Fatal(err)
	}

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("InsertOne", mock.Anything, mock.Anything).Return(&mongo.InsertOneResult{InsertedID: "5fc51f58c72ff10004dca382"}, nil)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.CreateVehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"InsertedID":"5fc51f58c72ff10004dca382"}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestVehicle_UpdateVehicleHandlerOwnerMismatch(t *testing.T) {
	req, err := http.NewRequest("PATCH", "/vehicles/5fc51f58c72ff10004dca382", strings.NewReader(`{"vehicleName":"Tesla Model 3","userEmail":"mallory@example.com"}`))
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"vehicle_id": "5fc51f58c72ff10004dca382"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Vehicle)
		(*arg).UserEmail = "jane@example.com"
	})
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.UpdateVehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusForbidden {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusForbidden)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "unauthorized update", Error: "owner email mismatch"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), string(b))
	}
	conn.(*mocks.CollectionHelper).AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestVehicle_UpdateVehicleHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("PATCH", "/vehicles/5fc51f58c72ff10004dca382", strings.NewReader(`{"vehicleName":"Tesla Model Y","userEmail":"jane@example.com"}`))
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"vehicle_id": "5fc51f58c72ff10004dca382"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Vehicle)
		(*arg).UserEmail = "jane@example.com"
	})
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocks.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.UpdateVehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), `"ModifiedCount":1`) {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestVehicle_DeleteVehicleHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/vehicles/5fc51f58c72ff10004dca382", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"vehicle_id": "5fc51f58c72ff10004dca382"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("DeleteOne", mock.Anything, mock.Anything).Return(&mongo.DeleteResult{DeletedCount: 1}, nil)
	db.(*MockDatabaseHelper).On("Collection", "vehicles").Return(conn)

	vehicleDatabase := databases.NewVehicleDatabase(db)
	v := handlers.Vehicle{
		DB: vehicleDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.DeleteVehicleHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"DeletedCount":1}`
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}
