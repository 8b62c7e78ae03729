package viacep

// Address is the structured address returned by the postal lookup
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

// lookupResponse is the raw ViaCEP payload. A syntactically valid but
// unknown CEP answers 200 with {"erro": true} instead of a 404.
type lookupResponse struct {
	Address
	Erro bool `json:"erro"`
}
