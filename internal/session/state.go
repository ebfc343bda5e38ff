package session

// State is a render-ready summary of the session
type State struct {
	View          View    `json:"view"`
	StoreID       int64   `json:"storeId,omitempty"`
	DeepLink      string  `json:"deepLink,omitempty"`
	Selected      int     `json:"selected"`
	SubmitEnabled bool    `json:"submitEnabled"`
	UploadRunning bool    `json:"uploadRunning"`
	Progress      float64 `json:"progress"`
	ModalOpen     bool    `json:"modalOpen"`
	ScrollLocked  bool    `json:"scrollLocked"`
	StoresLoaded  bool    `json:"storesLoaded"`
}

// State summarises the session for the console
func (s *Session) State() State {
	st := State{
		Selected:      s.uploads.Selection().Len(),
		SubmitEnabled: s.uploads.SubmitEnabled(),
		UploadRunning: s.uploads.Running(),
		Progress:      s.uploads.Progress(),
		StoresLoaded:  s.catalog.Loaded(),
		DeepLink:      s.DeepLinkQuery(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st.View = s.view
	if s.detail != nil {
		st.StoreID = s.detail.Store.ID
	}
	st.ModalOpen = s.modal.IsOpen()
	st.ScrollLocked = s.scrollLocked
	return st
}
