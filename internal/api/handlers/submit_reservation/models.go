package submit_reservation

// SubmitResponse HTTP response model: the deep link the storefront
// navigates to and whether the record-keeping write went through.
type SubmitResponse struct {
	WhatsappLink string `json:"whatsappLink"`
	Persisted    bool   `json:"persisted"`
}
