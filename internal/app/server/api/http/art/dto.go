package art

import (
	"artregistry/internal/domain/art"
)

type pieceRequest struct {
	Title       string   `json:"title" minLength:"1" maxLength:"64" doc:"Title of the art piece"`
	Size        int64    `json:"size" minimum:"1" maximum:"999999999" doc:"Size of the art piece"`
	Description string   `json:"description" minLength:"1" maxLength:"128" doc:"Description of the art piece"`
	Tags        []string `json:"tags" minItems:"1" maxItems:"10" doc:"Tags, each 1-32 characters"`
}

type createInput struct {
	Body pieceRequest
}

type createOutput struct {
	Body response
}

type getInput struct {
	ID int64 `path:"id" example:"1" doc:"Art piece ID"`
}

type getOutput struct {
	Body getResponse
}

type getResponse struct {
	Status string     `json:"status"`
	Piece  *art.Piece `json:"piece,omitempty"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Pieces []art.Piece `json:"pieces"`
	Total  int         `json:"total"`
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Art piece ID"`
	Body pieceRequest
}

type transferInput struct {
	ID   int64 `path:"id" example:"1" doc:"Art piece ID"`
	Body transferRequest
}

type transferRequest struct {
	NewOwner string `json:"new_owner" doc:"Identity receiving ownership"`
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Art piece ID"`
}

type accessInput struct {
	ID        int64  `path:"id" example:"1" doc:"Art piece ID"`
	Principal string `path:"principal" example:"alice" doc:"Identity to check"`
}

type accessOutput struct {
	Body accessResponse
}

type accessResponse struct {
	ArtID     int64  `json:"art_id"`
	Principal string `json:"principal"`
	Granted   bool   `json:"granted"`
}

type response struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
}
