package cluster

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ServiceURL resolves a reachable HTTP URL for a named service.
//
// LoadBalancer services use their ingress address and service port. NodePort
// services use a node address (external preferred) plus the node port, which
// is how minikube exposes the platform services. Anything else falls back to
// the cluster IP, which is only reachable from inside the cluster but still
// tells the user where the service lives.
func (c *Client) ServiceURL(ctx context.Context, namespace, name string) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	svc, err := c.clientset.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return "", fmt.Errorf("get service %s/%s: %w", namespace, name, err)
	}

	if len(svc.Spec.Ports) == 0 {
		return "", fmt.Errorf("service %s/%s has no ports", namespace, name)
	}
	port := svc.Spec.Ports[0]

	if svc.Spec.Type == corev1.ServiceTypeLoadBalancer {
		for _, ing := range svc.Status.LoadBalancer.Ingress {
			host := ing.IP
			if host == "" {
				host = ing.Hostname
			}
			if host != "" {
				return fmt.Sprintf("http://%s:%d", host, port.Port), nil
			}
		}
	}

	if port.NodePort != 0 {
		host, err := c.nodeAddress(ctx)
		if err != nil {
			return "", fmt.Errorf("resolve node address for %s/%s: %w", namespace, name, err)
		}
		return fmt.Sprintf("http://%s:%d", host, port.NodePort), nil
	}

	if svc.Spec.ClusterIP == "" || svc.Spec.ClusterIP == corev1.ClusterIPNone {
		return "", fmt.Errorf("service %s/%s has no reachable address", namespace, name)
	}
	return fmt.Sprintf("http://%s:%d", svc.Spec.ClusterIP, port.Port), nil
}

// nodeAddress returns an address of one cluster node, preferring external IPs
// over internal ones. Single-node clusters (minikube) have exactly one.
func (c *Client) nodeAddress(ctx context.Context) (string, error) {
	nodes, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("list nodes: %w", err)
	}
	if len(nodes.Items) == 0 {
		return "", fmt.Errorf("cluster has no nodes")
	}

	var internal string
	for _, node := range nodes.Items {
		for _, addr := range node.Status.Addresses {
			switch addr.Type {
			case corev1.NodeExternalIP:
				return addr.Address, nil
			case corev1.NodeInternalIP:
				if internal == "" {
					internal = addr.Address
				}
			}
		}
	}

	if internal == "" {
		return "", fmt.Errorf("no node has a usable address")
	}
	return internal, nil
}
