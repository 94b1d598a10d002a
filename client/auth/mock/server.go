package mock

import "net/http/httptest"

type HTTPTestAuthorizationServer struct {
	*AuthorizationService
	Server *httptest.Server
}

func NewHTTPTestAuthorizationServer(opts ...Option) (*HTTPTestAuthorizationServer, error) {
	service, err := NewAuthorizationService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestAuthorizationServer{
		AuthorizationService: service,
	}
	server.Server = httptest.NewServer(service.Handler())
	service.Issuer = server.Server.URL
	return server, nil
}

// URL returns the server base URL
func (s *HTTPTestAuthorizationServer) URL() string {
	return s.Server.URL
}

func (s *HTTPTestAuthorizationServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
